package logging

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dumpMessages(cs *captureSink) []string {
	recs := cs.records()
	msgs := make([]string, len(recs))
	for i, rec := range recs {
		msgs[i] = rec.Message
	}
	return msgs
}

func TestDump_Nil(t *testing.T) {
	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(nil)

	assert.Equal(t, []string{"Dump: <nil>"}, dumpMessages(cs))
}

func TestDump_Struct(t *testing.T) {
	type sample struct {
		Name   string
		Value  int
		hidden bool
	}

	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(sample{Name: "test", Value: 42, hidden: true})

	assert.Equal(t, []string{
		"Struct: sample",
		"Name: test",
		"Value: 42",
	}, dumpMessages(cs))
}

func TestDump_NestedStruct(t *testing.T) {
	type inner struct{ N int }
	type outer struct {
		Label string
		In    inner
	}

	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(outer{Label: "x", In: inner{N: 7}})

	assert.Equal(t, []string{
		"Struct: outer",
		"Label: x",
		"In: inner {",
		"In.N: 7",
		"In: }",
	}, dumpMessages(cs))
}

func TestDump_PointerToStruct(t *testing.T) {
	type sample struct{ Name string }

	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(&sample{Name: "ptr"})

	assert.Equal(t, []string{
		"Struct: sample",
		"Name: ptr",
	}, dumpMessages(cs))
}

func TestDump_Map(t *testing.T) {
	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(map[string]int{"a": 1})

	msgs := dumpMessages(cs)
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], "map[string]int (len: 1) {")
	assert.Contains(t, msgs[1], "[a]: 1")
}

func TestDump_Slice(t *testing.T) {
	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump([]int{1, 2, 3})

	msgs := dumpMessages(cs)
	require.Len(t, msgs, 5)
	assert.Contains(t, msgs[0], "[]int (len: 3, cap: 3) {")
	assert.Contains(t, msgs[1], "[0]: 1")
	assert.Contains(t, msgs[3], "[2]: 3")
}

func TestDump_SliceTruncated(t *testing.T) {
	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	big := make([]int, 20)
	l.Dump(big)

	var truncated bool
	for _, msg := range dumpMessages(cs) {
		if msg == ": ... (10 more elements)" {
			truncated = true
		}
	}
	assert.True(t, truncated, "expected a truncation marker after %d elements", maxDumpElements)
}

func TestDump_CircularReference(t *testing.T) {
	type node struct {
		Name string
		Next *node
	}
	a := &node{Name: "a"}
	b := &node{Name: "b", Next: a}
	a.Next = b

	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(a)

	assert.Equal(t, []string{
		"Struct: node",
		"Name: a",
		"Next: node {",
		"Next.Name: b",
		"Next.Next: <circular reference>",
		"Next: }",
	}, dumpMessages(cs))
}

func TestDump_DepthCapped(t *testing.T) {
	// A slice that contains itself has no pointer hop to detect, so the
	// walk ends at the depth cap instead.
	s := make([]interface{}, 1)
	s[0] = s

	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(s)

	var capped bool
	for _, msg := range dumpMessages(cs) {
		if strings.HasSuffix(msg, "<max depth reached>") {
			capped = true
		}
	}
	assert.True(t, capped, "expected the walk to stop at depth %d", maxDumpDepth)
}

func TestDump_BasicValue(t *testing.T) {
	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	l.Dump(42)

	assert.Equal(t, []string{": 42"}, dumpMessages(cs))
}

func TestDump_RecordShape(t *testing.T) {
	type sample struct{ A, B int }

	l := New()
	cs := &captureSink{}
	l.AddSink(cs)

	_, _, line, ok := runtime.Caller(0)
	l.Dump(sample{A: 1, B: 2})
	require.True(t, ok)

	recs := cs.records()
	require.Len(t, recs, 3)
	for _, rec := range recs {
		assert.Equal(t, SeverityDebug, rec.Severity)
		assert.Equal(t, CategoryGeneral, rec.Category)
		assert.Equal(t, line+1, rec.Origin.Line)
		assert.False(t, rec.Time.IsZero())
	}
}

func TestDump_ClosedLogger(t *testing.T) {
	l := New()
	cs := &captureSink{}
	l.AddSink(cs)
	require.NoError(t, l.Close())

	l.Dump(struct{ A int }{A: 1})

	assert.Zero(t, cs.count())
}

func TestDump_NoSinks(t *testing.T) {
	l := New()
	assert.NotPanics(t, func() { l.Dump(struct{ A int }{A: 1}) })
}
