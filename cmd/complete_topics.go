package cmd

import "github.com/etnz/cashbook/docs"

// topicPredictor completes documentation topic names.
type topicPredictor struct{}

func (topicPredictor) Predict(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme")
}
