package integration_tests

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/rendertree"
	"github.com/vk/treemarkgo/internal/testutil"
)

const widgetManifest = `
component "x_widget_component" {
	lifecycle {
		on_render = "OnRenderWidget"
	}

	prop "variant" {
		type    = string
		default = "plain"
	}
}
`

// widgetModule registers a renderer that reflects its variant prop and inline
// text back into the output node, so assertions can see what reached it.
func widgetModule() *testutil.SimpleModule {
	return &testutil.SimpleModule{
		HandlerName: "OnRenderWidget",
		Handler: &registry.RegisteredRenderer{
			Fn: func(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
				n := rendertree.New()
				n[rendertree.TypeKey] = "widget"
				n.SetAttribute("variant", props["variant"])
				if value != "" {
					n[rendertree.ValueKey] = value
				}
				return n, nil
			},
		},
	}
}

func TestPipeline_NamedFragmentsBecomeSlots(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"components/widget.hcl": widgetManifest,
		"markup/page.html":      `<x-widget name="a"/><x-widget name="b" variant="fancy"/>`,
	}

	result := testutil.RunCompileTest(t, files, widgetModule())
	require.NoError(t, result.Err)

	require.JSONEq(t, `{
		"a": {"#attributes": {"variant": "plain"}, "#type": "widget"},
		"b": {"#attributes": {"variant": "fancy"}, "#type": "widget"}
	}`, result.Output)
}

func TestPipeline_BuiltinMarkupNeedsNoManifests(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"markup/page.html": `<article><h1>Title</h1></article>`,
	}

	result := testutil.RunCompileTest(t, files)
	require.NoError(t, result.Err)

	require.JSONEq(t, `{
		"#type": "html_tag",
		"#tag":  "article",
		"0":     {"#type": "html_tag", "#tag": "h1", "#value": "Title"}
	}`, result.Output)
}

func TestPipeline_DeepEmbedBubblesChildren(t *testing.T) {
	t.Parallel()

	panelManifest := `
component "x_panel_component" {
	lifecycle {
		on_render = "OnRenderPanel"
	}
}
`
	panel := &testutil.SimpleModule{
		HandlerName: "OnRenderPanel",
		Handler: &registry.RegisteredRenderer{
			Fn: func(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
				body := rendertree.New()
				body[rendertree.TypeKey] = "container"
				n := rendertree.New()
				n[rendertree.TypeKey] = "panel"
				n.SetAttribute("deep-embed", "true")
				n["body"] = body
				return n, nil
			},
		},
	}

	files := map[string]string{
		"components/panel.hcl": panelManifest,
		"markup/page.html":     `<x-panel><p name="intro">Hi</p></x-panel>`,
	}

	result := testutil.RunCompileTest(t, files, panel)
	require.NoError(t, result.Err)

	require.JSONEq(t, `{
		"#type": "panel",
		"body": {
			"#type": "container",
			"intro": {"#type": "html_tag", "#tag": "p", "#value": "Hi"}
		}
	}`, result.Output)
	assert.NotContains(t, result.Output, "deep-embed", "the marker must not survive into output")
}

func TestPipeline_StrictFailureSurfacesInRun(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"markup/page.html": `<x-missing/>`,
	}

	result := testutil.RunCompileTest(t, files)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "no component registered for tag <x-missing>")
	assert.Contains(t, result.Err.Error(), "x_missing_component")
}

func TestPipeline_UnparseableMarkupIsReportedNotFatal(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"markup/page.html": `<div><b></div>`,
	}

	result := testutil.RunCompileTest(t, files)
	require.NoError(t, result.Err, "unparseable input must degrade, not fail the run")

	assert.Equal(t, "{}", strings.TrimSpace(result.Output))
	assert.Contains(t, result.LogOutput, "mismatched closing tag")
}

func TestPipeline_EmitsOneTreePerFileInPathOrder(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"markup/a.html": `<p>first</p>`,
		"markup/b.html": `<p>second</p>`,
	}

	result := testutil.RunCompileTest(t, files)
	require.NoError(t, result.Err)

	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"#type": "html_tag", "#tag": "p", "#value": "first"}`, lines[0])
	require.JSONEq(t, `{"#type": "html_tag", "#tag": "p", "#value": "second"}`, lines[1])
}
