package intensify_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/intensify"
	"github.com/katalvlaran/wavepick/solution"
	"github.com/stretchr/testify/require"
)

const twoAisleCoverText = "1 2 2\n2 0 2 1 2\n1 0 2\n1 1 2\n4 4\n"
const redundantAisleText = "1 1 2\n1 0 1\n1 0 5\n1 0 5\n1 1\n"

func mustParse(t *testing.T, text string) *instance.Instance {
	t.Helper()
	ins, err := instance.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return ins
}

func TestFocusedLocalSearch_PrunesRedundantAisle(t *testing.T) {
	ins := mustParse(t, redundantAisleText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)
	s.ApplyAddAisle(1)
	require.True(t, s.IsFeasible())

	cfg := intensify.DefaultFLSConfig()
	cfg.Mode = intensify.BestImprovement
	res := intensify.FocusedLocalSearch(context.Background(), s, cfg, rand.New(rand.NewSource(1)))

	require.True(t, res.Best.IsFeasible())
	require.Equal(t, 1, res.Best.NumChosenAisles())
}

func TestPathRelinking_ReachesGuideFeasibly(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	origin := solution.New(ins)
	origin.ApplyAddOrder(0)
	origin.ApplyAddAisle(0)
	origin.Repair()

	guide := solution.New(ins)
	guide.ApplyAddOrder(0)
	guide.ApplyAddAisle(0)
	guide.ApplyAddAisle(1)

	cfg := intensify.DefaultFLSConfig()
	best := intensify.PathRelinking(context.Background(), origin, guide, rand.New(rand.NewSource(2)), false, cfg)
	require.True(t, best.IsFeasible())
}

func TestArchive_AdmitsUpToCapacity(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	ar := intensify.NewArchive(2)

	s1 := solution.New(ins)
	s1.ApplyAddOrder(0)
	s1.ApplyAddAisle(0)
	s1.ApplyAddAisle(1)
	require.True(t, ar.Offer(s1))

	s2 := s1.DeepCopy()
	s2.ApplyRemoveAisle(1) // infeasible until repaired
	s2.Repair()            // re-adds aisle 1: s2 equals s1 again
	ar.Offer(s2)

	require.LessOrEqual(t, ar.Len(), 2)
	for _, m := range ar.Members() {
		require.True(t, m.IsFeasible())
	}
}

func TestArchive_RejectsInfeasible(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	ar := intensify.NewArchive(2)

	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0) // partial coverage only: infeasible

	require.False(t, ar.Offer(s))
	require.Equal(t, 0, ar.Len())
}

func TestMemeticTabu_ReturnsFeasible(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)
	s.ApplyAddAisle(1)

	best := intensify.MemeticTabu(context.Background(), s, intensify.DefaultTabuMaxIterations, intensify.DefaultTabuTenure)
	require.True(t, best.IsFeasible())
}

func TestElitePathRelinking_EmptyArchive(t *testing.T) {
	ar := intensify.NewArchive(5)
	cfg := intensify.DefaultFLSConfig()
	best := intensify.ElitePathRelinking(context.Background(), ar, cfg, rand.New(rand.NewSource(1)))
	require.Nil(t, best)
}
