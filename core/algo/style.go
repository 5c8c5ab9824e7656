package algo

import "github.com/pathworks/talentmap/schema"

// ClassifyStyle computes each learning-style channel's mean raw answer
// value over the items that were actually answered, then picks the channel
// with the strictly greatest mean as dominant. Ties resolve to the first
// channel in canonical order because a later channel only replaces the
// dominant on a strictly greater mean.
//
// Channel means deliberately use raw answer values: the reverse flag is a
// domain-aggregation concern and never applies here, even when a mapped
// item is reverse-scored.
func ClassifyStyle(styleMap schema.StyleMap, answers schema.AnswerSet) schema.StyleResult {
	result := schema.StyleResult{Channels: make(map[schema.Channel]float64, len(schema.ChannelOrder))}

	var dominant *schema.Channel
	var best float64
	for _, channel := range schema.ChannelOrder {
		var sum float64
		var count int
		for _, id := range styleMap[channel] {
			raw, ok := answers.Numeric(id)
			if !ok {
				continue
			}
			sum += raw
			count++
		}
		var mean float64
		if count > 0 {
			mean = sum / float64(count)
		}
		result.Channels[channel] = mean

		// Dominant stays nil when nothing was answered in any channel.
		if count > 0 && (dominant == nil || mean > best) {
			ch := channel
			dominant = &ch
			best = mean
		}
	}
	result.Dominant = dominant
	return result
}
