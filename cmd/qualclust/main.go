// The qualclust command clusters a categorical dataset by exact
// optimization: it loads the data, scores every row pair, assembles the
// chosen clique-partitioning formulation, and either solves it in process
// or exports it as an LP file for an external solver.
//
// Usage:
//
//	qualclust -data lenses.data -model alpha+ [-relax] [-timeout 30s]
//	qualclust -data lenses.data -model gamma -lp lenses.lp
package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/golang/glog"

	"github.com/qualclust/qualclust/bestcut"
	"github.com/qualclust/qualclust/dataset"
	"github.com/qualclust/qualclust/model"
	"github.com/qualclust/qualclust/similarity"
	"github.com/qualclust/qualclust/solve"
)

var (
	dataPath = flag.String("data", "", "whitespace-delimited categorical dataset (required)")
	formName = flag.String("model", "full", `formulation: "full", "alpha0", "alpha+", "beta0", "beta+" or "gamma"`)
	lpPath   = flag.String("lp", "", "export the model to this LP file instead of solving")
	relaxed  = flag.Bool("relax", false, "drop integrality and build the LP relaxation")
	timeout  = flag.Duration("timeout", 0, "solver time limit, e.g. 30s (0 = unbounded)")
)

func run() error {
	if *dataPath == "" {
		return errors.New("the -data flag is required")
	}
	f, err := model.ParseFormulation(*formName)
	if err != nil {
		return err
	}

	d, err := dataset.Load(*dataPath)
	if err != nil {
		return err
	}
	glog.Infof("loaded %d rows × %d attributes from %s", d.Rows(), d.Cols(), *dataPath)

	s, err := similarity.Build(d)
	if err != nil {
		return err
	}
	glog.Infof("similarity matrix built: %d row pairs", s.NumPairs())

	var (
		opts  []model.Option
		trace *bestcut.Trace
	)
	switch f {
	case model.AlphaPlus, model.BetaPlus:
		red := bestcut.Reduce(s)
		trace = &red.Trace
		opts = append(opts, model.WithReduction(red))
		glog.Infof("positive bestcut %g in %s, %d variables fixed",
			red.Cut, red.Trace.TimeTotal, len(red.FixedOnes))
	case model.Gamma:
		red := bestcut.Reduce(s, bestcut.WithMode(bestcut.NegativeCut))
		trace = &red.Trace
		opts = append(opts, model.WithReduction(red))
		glog.Infof("negative bestcut %g in %s, %d variables fixed",
			red.Cut, red.Trace.TimeTotal, len(red.FixedOnes))
	}
	if *relaxed {
		opts = append(opts, model.WithRelaxed())
	}

	m, err := model.Assemble(s, f, opts...)
	if err != nil {
		return err
	}
	vars, cons := m.Stats()
	glog.Infof("assembled %s model: %d variables, %d constraints", f, vars, cons)

	var backend solve.Backend
	if *lpPath != "" {
		backend = &solve.Exporter{Path: *lpPath}
	} else {
		var sopts []solve.Option
		if *timeout > 0 {
			sopts = append(sopts, solve.WithTimeLimit(*timeout))
		}
		backend = solve.New(sopts...)
	}

	res, err := backend.Consume(m)
	if err != nil {
		return err
	}
	res.Heuristic = trace

	if *lpPath != "" {
		fmt.Printf("exported %d variables, %d constraints to %s\n",
			res.NumCols, res.NumRows, *lpPath)
		return nil
	}

	fmt.Printf("objective:   %g\n", res.Objective)
	fmt.Printf("solver time: %s\n", res.TimeSolver)
	if res.Heuristic != nil {
		fmt.Printf("heuristic:   cut %g in %s\n", res.Heuristic.Cut, res.Heuristic.TimeTotal)
	}
	clusters := 0
	for _, label := range res.Groups {
		if label+1 > clusters {
			clusters = label + 1
		}
	}
	fmt.Printf("clusters:    %d\n", clusters)
	fmt.Printf("groups:      %v\n", res.Groups)

	return nil
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if err := run(); err != nil {
		glog.Exitf("qualclust: %v", err)
	}
}
