package cmd

import (
	"github.com/etnz/collateral"
	"github.com/etnz/collateral/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the ltv command line for shell completion.
func Completion() *complete.Command {
	types := predict.Set{string(collateral.AllTypes)}
	for _, t := range collateral.AssetTypes {
		types = append(types, string(t))
	}
	var fields predict.Set
	for _, f := range collateral.SortFields() {
		fields = append(fields, string(f))
	}
	topics := predict.Set{"readme"}
	if all, err := docs.GetAllTopics(); err == nil {
		topics = append(topics, all...)
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"assets":    predict.Files("*.json"),
			"policy":    predict.Files("*.yaml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"pretty":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"list": {
				Flags: map[string]complete.Predictor{
					"type": types,
					"q":    predict.Something,
					"sort": fields,
					"desc": predict.Nothing,
				},
			},
			"search": {
				Flags: map[string]complete.Predictor{"type": types},
				Args:  predict.Something,
			},
			"show": {
				Args: predict.Something,
			},
			"summary": {
				Flags: map[string]complete.Predictor{"type": types},
			},
			"import": {
				Flags: map[string]complete.Predictor{
					"path": predict.Something,
					"o":    predict.Files("*.json"),
				},
				Args: predict.Files("*.json"),
			},
			"topic": {
				Args: topics,
			},
		},
	}
}
