// Package questionnav provides a question navigator list for exam screens.
package questionnav

import "fmt"

// Label returns the display label of a question, e.g. "T2 Q5". Topic and
// question numbers are 1-based.
func Label(topic, question int) string {
	return fmt.Sprintf("T%d Q%d", topic, question)
}

// Labels builds labels for consecutive topics where topicSizes[i] is the
// number of questions in topic i+1.
func Labels(topicSizes []int) []string {
	total := 0
	for _, n := range topicSizes {
		if n > 0 {
			total += n
		}
	}
	out := make([]string, 0, total)
	for i, n := range topicSizes {
		for q := 1; q <= n; q++ {
			out = append(out, Label(i+1, q))
		}
	}
	return out
}

// UniformLabels builds labels for topics topics of perTopic questions each.
func UniformLabels(topics, perTopic int) []string {
	if topics <= 0 || perTopic <= 0 {
		return nil
	}
	sizes := make([]int, topics)
	for i := range sizes {
		sizes[i] = perTopic
	}
	return Labels(sizes)
}
