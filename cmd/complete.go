package cmd

import (
	"flag"

	"github.com/etnz/budget/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the subcommands.
//
// Flags are predicted from each subcommand flag set: entries files for -f,
// nothing for boolean flags and any value otherwise.
func (a *App) Completion() *complete.Command {
	root := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range a.Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		if c.Name() == "topic" {
			sub.Args = topicPredictor()
		}
		root.Sub[c.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	if f.Name == "f" {
		return predict.Files("*.json*")
	}
	return predict.Something
}

func topicPredictor() complete.Predictor {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(topics)
}
