package chat

import "github.com/chatgraph/chatgraph/pkg/chatgraph/config"

// OptionsFromConfig derives Bot options from a loaded config file.
//
// Recognized keys:
//   - model: model used by all handlers
//   - classifier_model: separate model for intent classification
func OptionsFromConfig(cfg config.Config) []BotOption {
	var opts []BotOption
	if m := cfg.String("model", ""); m != "" {
		opts = append(opts, WithModel(m))
	}
	if m := cfg.String("classifier_model", ""); m != "" {
		opts = append(opts, WithClassifierModel(m))
	}
	return opts
}
