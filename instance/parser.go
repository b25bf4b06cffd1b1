package instance

import (
	"bufio"
	"io"
	"strconv"
)

// tokenizer reads whitespace-separated integer tokens from r, ignoring
// end-of-line ("tokenization ignores end-of-line"), and tracks
// the 0-based token offset for ParseError reporting.
type tokenizer struct {
	sc     *bufio.Scanner
	offset int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) nextInt() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, &ParseError{Offset: t.offset, Err: ErrTruncated}
		}
		return 0, &ParseError{Offset: t.offset, Err: ErrTruncated}
	}
	tok := t.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Offset: t.offset, Err: ErrNotInteger}
	}
	t.offset++
	return v, nil
}

// Parse reads the SBPO wave-picking instance file format:
//
//  1. O I A
//  2. O records: k (itemId units)×k
//  3. A records: l (itemId units)×l
//  4. LB UB
func Parse(r io.Reader) (*Instance, error) {
	t := newTokenizer(r)

	numOrders, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	numItems, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	numAisles, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	if numOrders < 0 || numItems < 0 || numAisles < 0 {
		return nil, &ParseError{Offset: t.offset, Err: ErrNegativeCount}
	}

	orderCounts := make([]int, numOrders)
	var orderFlat [][2]int
	for o := 0; o < numOrders; o++ {
		k, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		orderCounts[o] = k
		for j := 0; j < k; j++ {
			pair, err := readPair(t)
			if err != nil {
				return nil, err
			}
			orderFlat = append(orderFlat, pair)
		}
	}

	aisleCounts := make([]int, numAisles)
	var aisleFlat [][2]int
	for a := 0; a < numAisles; a++ {
		l, err := t.nextInt()
		if err != nil {
			return nil, err
		}
		aisleCounts[a] = l
		for j := 0; j < l; j++ {
			pair, err := readPair(t)
			if err != nil {
				return nil, err
			}
			aisleFlat = append(aisleFlat, pair)
		}
	}

	lb, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	ub, err := t.nextInt()
	if err != nil {
		return nil, err
	}

	return NewInstance(numItems, orderFlat, aisleFlat, orderCounts, aisleCounts, lb, ub)
}

func readPair(t *tokenizer) ([2]int, error) {
	itemID, err := t.nextInt()
	if err != nil {
		return [2]int{}, err
	}
	units, err := t.nextInt()
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{itemID, units}, nil
}
