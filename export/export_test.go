package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awantoch/beemchart/blob"
	"github.com/awantoch/beemchart/chart"
	"github.com/awantoch/beemchart/constants"
)

func sampleChart() *chart.Chart {
	c := chart.NewFlowchart(chart.LeftRight)
	c.AddNode("A", "Start", "()")
	c.AddEdge("A", "B", "yes")
	return c
}

func TestSaveChart_AddsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveChart(sampleChart(), filepath.Join(dir, "flow"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "flow.mmd"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "flowchart LR\nA(Start)\nA -->|yes| B", string(data))
}

func TestSaveChart_KeepsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveChart(sampleChart(), filepath.Join(dir, "flow.mmd"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "flow.mmd"), path)
}

func TestSaveChart_WriteError(t *testing.T) {
	_, err := SaveChart(sampleChart(), filepath.Join(t.TempDir(), "missing", "flow"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRenderHTML(t *testing.T) {
	page, err := RenderHTML(sampleChart())
	require.NoError(t, err)
	require.Contains(t, page, "<!DOCTYPE html>")
	require.Contains(t, page, "<title>Mermaid Chart</title>")
	require.Contains(t, page, "import mermaid from '"+MermaidScriptURL+"';")
	require.Contains(t, page, "mermaid.initialize({ startOnLoad: true });")
	require.Contains(t, page, "<div class=\"mermaid\">\nflowchart LR\nA(Start)\nA --&gt;|yes| B\n        </div>")
}

func TestRenderHTML_TitleEscaped(t *testing.T) {
	page, err := RenderHTML(sampleChart(), WithTitle("<Ops & Flow>"))
	require.NoError(t, err)
	require.Contains(t, page, "<title>&lt;Ops &amp; Flow&gt;</title>")
}

func TestRenderHTML_EmptyTitleKeepsDefault(t *testing.T) {
	page, err := RenderHTML(sampleChart(), WithTitle(""))
	require.NoError(t, err)
	require.Contains(t, page, "<title>"+DefaultTitle+"</title>")
}

func TestRenderHTML_LabelsEscaped(t *testing.T) {
	c := chart.NewFlowchart(chart.TopDown)
	c.AddNode("A", "<img src=x onerror=alert(1)>", "")
	page, err := RenderHTML(c)
	require.NoError(t, err)
	require.NotContains(t, page, "<img")
	require.Contains(t, page, "A[&lt;img src=x onerror=alert(1)&gt;]")
}

func TestSaveHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveHTML(sampleChart(), filepath.Join(dir, "preview"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".html"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "A --&gt;|yes| B")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatMermaid, "mmd": FormatMermaid, "HTML": FormatHTML, ".html": FormatHTML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseFormat("svg")
	require.Error(t, err)
}

func TestFormat_ExtAndContentType(t *testing.T) {
	require.Equal(t, constants.ExtMermaid, FormatMermaid.Ext())
	require.Equal(t, constants.ExtHTML, FormatHTML.Ext())
	require.Equal(t, constants.ContentTypeMermaid, FormatMermaid.ContentType())
	require.Equal(t, constants.ContentTypeHTML, FormatHTML.ContentType())
}

func TestPublish_Filesystem(t *testing.T) {
	store, err := blob.NewFilesystemStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	url, err := Publish(ctx, store, sampleChart(), "flow", FormatMermaid)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(url, "flow.mmd"))

	data, err := store.Get(ctx, url)
	require.NoError(t, err)
	require.Equal(t, sampleChart().Render(), string(data))

	url, err = Publish(ctx, store, sampleChart(), "flow", FormatHTML, WithTitle("Flow"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(url, "flow.html"))
	data, err = store.Get(ctx, url)
	require.NoError(t, err)
	require.Contains(t, string(data), "<title>Flow</title>")
}

type failingStore struct{}

func (failingStore) Put(context.Context, []byte, string, string) (string, error) {
	return "", errors.New("boom")
}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestPublish_StoreError(t *testing.T) {
	_, err := Publish(context.Background(), failingStore{}, sampleChart(), "x", FormatMermaid)
	require.ErrorContains(t, err, "publish chart: boom")
}
