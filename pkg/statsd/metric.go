package statsd

import (
	"fmt"
	"sort"

	"github.com/goto/salt/log"
)

// Metric is a statsd metric being built. Every method is safe on a nil Metric,
// which is what a disabled Reporter hands out.
type Metric struct {
	logger        log.Logger
	name          string
	rate          float64
	tags          map[string]string
	withInfluxTag bool
	publishFunc   func(name string, tags []string, rate float64) error
}

// Success tags the metric as successful.
func (m *Metric) Success() *Metric {
	return m.Tag("success", "true")
}

// Failure tags the metric as failed.
func (m *Metric) Failure() *Metric {
	return m.Tag("success", "false")
}

// Outcome tags the metric by whether err is nil.
func (m *Metric) Outcome(err error) *Metric {
	if err != nil {
		return m.Failure()
	}
	return m.Success()
}

// Tag adds a tag to the metric.
func (m *Metric) Tag(key string, val string) *Metric {
	if m == nil {
		return nil
	}
	if m.tags == nil {
		m.tags = map[string]string{}
	}
	m.tags[key] = val
	return m
}

// Publish sends the metric with the collected tags. Intended to be used with defer.
func (m *Metric) Publish() {
	if m == nil {
		return
	}

	name := m.name
	var tags []string
	if m.withInfluxTag {
		name = influxName(m.name, m.tags)
	} else {
		tags = datadogTags(m.tags)
	}

	go func() {
		if err := m.publishFunc(name, tags, m.rate); err != nil && m.logger != nil {
			m.logger.Warn("failed to publish metric", "name", name, "err", err)
		}
	}()
}

func sortedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func datadogTags(tags map[string]string) []string {
	out := make([]string, 0, len(tags))
	for _, k := range sortedKeys(tags) {
		out = append(out, fmt.Sprintf("%s:%s", k, tags[k]))
	}
	return out
}

func influxName(name string, tags map[string]string) string {
	for _, k := range sortedKeys(tags) {
		name = fmt.Sprintf("%s,%s=%s", name, k, tags[k])
	}
	return name
}
