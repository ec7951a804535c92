package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/notargets/noh/noh"
)

var (
	csvFile string
)

// Reads a CSV file of Noh error norms from a resolution study, one row per run:
//
//	title, numPts, rhoL1, rhoL2, rhoMAX, sieL1, sieL2, sieMAX
//
// as appended by successive "noh compare --csv" runs. Header rows are skipped.
// and prints the observed order of convergence between successive resolutions.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	titles := make([]string, 0, len(studies))
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		if err = studies[title].Print(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

const numNorms = 6

var normNames = [numNorms]string{"rhoL1", "rhoL2", "rhoMAX", "sieL1", "sieL2", "sieMAX"}

type ConvergenceStudy struct {
	title  string
	numPTS []int
	norms  [numNorms][]float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, norms [numNorms]float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	for n := range norms {
		cs.norms[n] = append(cs.norms[n], norms[n])
	}
}

// Orders returns, for each norm, the observed order between successive runs
// sorted by increasing resolution, with h = 1/numPts.
func (cs *ConvergenceStudy) Orders() (orders [numNorms][]float64, err error) {
	idx := make([]int, len(cs.numPTS))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return cs.numPTS[idx[a]] < cs.numPTS[idx[b]] })
	h := make([]float64, len(idx))
	for i, j := range idx {
		h[i] = 1 / float64(cs.numPTS[j])
	}
	for n := range cs.norms {
		e := make([]float64, len(idx))
		for i, j := range idx {
			e[i] = cs.norms[n][j]
		}
		if orders[n], err = noh.ConvergenceOrder(h, e); err != nil {
			return
		}
	}
	return
}

func (cs *ConvergenceStudy) Print(w io.Writer) (err error) {
	var (
		orders [numNorms][]float64
	)
	if orders, err = cs.Orders(); err != nil {
		return fmt.Errorf("%s: %w", cs.title, err)
	}
	fmt.Fprintf(w, "Title = %s, Runs = %d\n", cs.title, len(cs.numPTS))
	for n, name := range normNames {
		fmt.Fprintf(w, "%-8s order = %v\n", name, orders[n])
	}
	return
}

func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		cs      *ConvergenceStudy
		ok      bool
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		// Each appended "noh compare --csv" run repeats the header
		if len(rec) > 0 && rec[0] == "title" {
			continue
		}
		if len(rec) < 2+numNorms {
			return nil, fmt.Errorf("line %d: want %d columns, have %d", i+1, 2+numNorms, len(rec))
		}
		title := rec[0]
		npts, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		var norms [numNorms]float64
		for n := range norms {
			if norms[n], err = strconv.ParseFloat(rec[2+n], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		cs.Add(npts, norms)
	}
	return
}
