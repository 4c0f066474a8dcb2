package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaldren/relnotify/internal/config"
)

func testConfig(summaryPattern, linkPattern, changelog string) *config.Config {
	return &config.Config{
		Issues: config.IssuesConfig{
			SummaryPattern: summaryPattern,
			LinkPattern:    linkPattern,
			Changelog:      changelog,
		},
		Fetch: config.FetchConfig{Timeout: "5s", UserAgent: "relnotify/test"},
	}
}

func TestIssueBlock_EndToEnd(t *testing.T) {
	// ABC-1 resolves; XYZ-2 hits a connection that dies mid-request.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/ABC-1"):
			_, _ = w.Write([]byte(`{"fields":{"summary":"Fix bug","status":{"name":"Done"}}}`))
		case strings.HasSuffix(r.URL.Path, "/XYZ-2"):
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	changelog := "**[ABC-1](...) fix\n**ABC-1** dup\n**XYZ-2** other"
	cfg := testConfig(server.URL+"/issue/${id}", "", changelog)

	block := issueBlock(context.Background(), cfg)

	assert.Equal(t,
		"**Issues**\n\n* **ABC-1**: Fix bug (Done)\n* **XYZ-2**: Failed to fetch (Network Error)",
		block)
}

func TestIssueBlock_NoPattern(t *testing.T) {
	cfg := testConfig("", "", "**ABC-1** fix")
	assert.Empty(t, issueBlock(context.Background(), cfg))
}

func TestIssueBlock_NoIdentifiers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no fetch should be issued for an identifier-free changelog")
	}))
	defer server.Close()

	cfg := testConfig(server.URL+"/issue/${id}", "", "routine dependency bumps, no tickets")
	assert.Empty(t, issueBlock(context.Background(), cfg))
}

func TestIssueBlock_AllResponsesMissingSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fields":{}}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL+"/issue/${id}", "", "**ABC-1** one\n**DEF-2** two")
	assert.Empty(t, issueBlock(context.Background(), cfg))
}
