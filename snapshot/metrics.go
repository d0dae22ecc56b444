// Copyright 2025 The BlitzKV Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

// Names of the comparison metrics carried by every Result.
const (
	MetricThroughput  = "throughput"
	MetricHitRatio    = "hit_ratio"
	MetricReadSSDOps  = "read_ssd_ops"
	MetricWriteSSDOps = "write_ssd_ops"
)

// MetricNames lists the comparison metrics in presentation order.
var MetricNames = []string{
	MetricThroughput,
	MetricHitRatio,
	MetricReadSSDOps,
	MetricWriteSSDOps,
}

// A MetricKey identifies one metric (e.g., "throughput") from one
// benchmark variant (e.g., "baseline").
type MetricKey struct {
	Variant, Metric string
}

// A Collection indexes result metrics by variant and metric.
type Collection struct {
	Values map[MetricKey]float64

	// Keys gives all keys of Values in the order added.
	Keys []MetricKey

	// Variants and Metrics give the set of variants and metrics
	// from the keys in Values, in the order the results were read.
	Variants, Metrics []string

	// VariantSet and MetricSet are set representations of Variants
	// and Metrics.
	VariantSet, MetricSet map[string]bool
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		Values:     make(map[MetricKey]float64),
		VariantSet: make(map[string]bool),
		MetricSet:  make(map[string]bool),
	}
}

// Collect flattens the comparison metrics of results into a
// Collection, preserving the order of the results file.
func Collect(results []Result) *Collection {
	c := NewCollection()
	for i := range results {
		r := &results[i]
		c.Add(MetricKey{r.Variant, MetricThroughput}, r.Throughput)
		c.Add(MetricKey{r.Variant, MetricHitRatio}, r.HitRatio)
		c.Add(MetricKey{r.Variant, MetricReadSSDOps}, float64(r.ReadSSDOps))
		c.Add(MetricKey{r.Variant, MetricWriteSSDOps}, float64(r.WriteSSDOps))
	}
	return c
}

// Add records value under key, overriding any earlier value for the
// same key.
func (c *Collection) Add(key MetricKey, value float64) {
	if _, ok := c.Values[key]; !ok {
		c.addKey(key)
	}
	c.Values[key] = value
}

func (c *Collection) addKey(key MetricKey) {
	addString := func(strings *[]string, set map[string]bool, add string) {
		if set[add] {
			return
		}
		*strings = append(*strings, add)
		set[add] = true
	}
	c.Keys = append(c.Keys, key)
	addString(&c.Variants, c.VariantSet, key.Variant)
	addString(&c.Metrics, c.MetricSet, key.Metric)
}

// Value returns the metric value for the given variant, and whether
// it was present in the results.
func (c *Collection) Value(variant, metric string) (float64, bool) {
	v, ok := c.Values[MetricKey{variant, metric}]
	return v, ok
}

// Series returns the values of metric across all variants, in variant
// order. Variants missing the metric contribute zero.
func (c *Collection) Series(metric string) []float64 {
	vals := make([]float64, len(c.Variants))
	for i, variant := range c.Variants {
		vals[i] = c.Values[MetricKey{variant, metric}]
	}
	return vals
}
