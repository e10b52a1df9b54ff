package functional_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/ganot/taskboard/internal/testserver"
	"github.com/stretchr/testify/require"
)

func TestBoardFlow(t *testing.T) {
	ts := testserver.New(t)

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// create a project through the form endpoint
	form := url.Values{
		"title":       {"Build API"},
		"description": {"Design the REST layer"},
		"people":      {"3"},
	}
	resp, err = http.PostForm(ts.Server.URL+"/projects", form)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	id := created["id"]
	require.NotEmpty(t, id)

	// the board page shows it in the active column
	page := get(t, ts.Server.URL+"/")
	require.Contains(t, page, "Build API")

	activeCol := get(t, ts.Server.URL+"/columns/active")
	require.Contains(t, activeCol, id)

	// drag it into the finished column
	resp, err = http.Post(ts.Server.URL+"/columns/finished/drop", "text/plain", strings.NewReader(id))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.Contains(t, get(t, ts.Server.URL+"/columns/finished"), id)
	require.NotContains(t, get(t, ts.Server.URL+"/columns/active"), id)

	// both mutations landed in the activity ledger
	var count int
	require.NoError(t, ts.DB.QueryRow(`SELECT COUNT(*) FROM activity_log WHERE project_id = ?`, id).Scan(&count))
	require.Equal(t, 2, count)

	// a repeated drop is a no-op and adds no ledger entry
	resp, err = http.Post(ts.Server.URL+"/columns/finished/drop", "text/plain", strings.NewReader(id))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, ts.DB.QueryRow(`SELECT COUNT(*) FROM activity_log WHERE project_id = ?`, id).Scan(&count))
	require.Equal(t, 2, count)
}

func get(t *testing.T, url string) string {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
