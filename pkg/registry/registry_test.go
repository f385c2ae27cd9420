package registry

import (
	"encoding/json"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	r := Get()

	assert.Equal(t, "DD MMM YYYY, hh:mm A", r.Pattern.DateTime)
	assert.Equal(t, "DD MMM YYYY, hh:mm:ss A", r.Pattern.PreciseDateTime)
	assert.Equal(t, "minute(?:s)?", r.Pattern.Query.Minutes)
	assert.Equal(t, "CONSUMER", string(r.Span.Kind.Consumer))
	assert.Equal(t, "Composite", string(r.InstanceKind.Composite))
	assert.Equal(t, `^gateway$`, r.Cell.GatewayNamePattern)
	assert.Equal(t, `^async\sext_authz\segress$`, r.System.SidecarAuthFilterOperationNamePattern)
	assert.Equal(t, "Component", string(r.CelleryType.Component))
	assert.Equal(t, "Warning", string(r.Status.Warning))
	assert.Equal(t, 240, r.Dashboard.SideNavBarWidth)
	assert.Equal(t, "/oauth2/authorize?response_type=code", r.Dashboard.AuthorizationEP)
	assert.Equal(t, "cellery-default", r.Runtime.LocalRuntimeID)
	assert.Equal(t, "default", r.Runtime.DefaultNamespace)
}

func TestGetReturnsCopy(t *testing.T) {
	r := Get()
	r.Dashboard.SideNavBarWidth = 1
	r.Pattern.Query.RelativeTime = "changed"

	fresh := Get()
	assert.Equal(t, 240, fresh.Dashboard.SideNavBarWidth)
	assert.NotEqual(t, "changed", fresh.Pattern.Query.RelativeTime)

	entry, err := Lookup("Dashboard.SIDE_NAV_BAR_WIDTH")
	require.NoError(t, err)
	assert.Equal(t, 240, entry.Value)
}

func TestDerivedPatternsFollowBaseFragments(t *testing.T) {
	q := Get().Pattern.Query

	assert.Equal(t,
		q.Years+"|"+q.Months+"|"+q.Days+"|"+q.Hours+"|"+q.Minutes+"|"+q.Seconds,
		q.TimeUnit)
	assert.Equal(t, `([0-9]+)\s*(`+q.TimeUnit+`)`, q.Time)
	assert.Equal(t, `^\s*now\s*(?:-\s*(?:`+q.Time+`\s*)+)*$`, q.RelativeTime)
}

func TestJSONShape(t *testing.T) {
	raw, err := json.Marshal(Get())
	require.NoError(t, err)

	var tree map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &tree))

	assert.Equal(t, "DD MMM YYYY, hh:mm A", tree["Pattern"]["DATE_TIME"])
	assert.Equal(t, "day(?:s)?", tree["Pattern"]["Query"].(map[string]any)["DAYS"])
	assert.Equal(t, "SERVER", tree["Span"]["Kind"].(map[string]any)["SERVER"])
	assert.Equal(t, "Cell", tree["InstanceKind"]["CELL"])
	assert.Equal(t, float64(240), tree["Dashboard"]["SIDE_NAV_BAR_WIDTH"])
	assert.Equal(t, "cellery-default", tree["Runtime"]["LOCAL_RUNTIME_ID"])
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantValue any
		wantKind  Kind
		wantErr   bool
	}{
		{
			name:      "format",
			path:      "Pattern.DATE_TIME",
			wantValue: "DD MMM YYYY, hh:mm A",
			wantKind:  KindFormat,
		},
		{
			name:      "base query pattern",
			path:      "Pattern.Query.HOURS",
			wantValue: "hour(?:s)?",
			wantKind:  KindPattern,
		},
		{
			name:      "derived pattern",
			path:      "Pattern.Query.TIME_UNIT",
			wantValue: "year(?:s)?|month(?:s)?|day(?:s)?|hour(?:s)?|minute(?:s)?|second(?:s)?",
			wantKind:  KindDerived,
		},
		{
			name:      "span kind",
			path:      "Span.Kind.CLIENT",
			wantValue: "CLIENT",
			wantKind:  KindEnum,
		},
		{
			name:      "naming convention",
			path:      "Cell.COMPONENT_NAME_PATTERN",
			wantValue: `^(.+)--(.+)$`,
			wantKind:  KindNaming,
		},
		{
			name:      "layout number",
			path:      "Dashboard.SIDE_NAV_BAR_WIDTH",
			wantValue: 240,
			wantKind:  KindLayout,
		},
		{
			name:      "runtime",
			path:      "Runtime.DEFAULT_NAMESPACE",
			wantValue: "default",
			wantKind:  KindRuntime,
		},
		{
			name:    "group is not a leaf",
			path:    "Pattern.Query",
			wantErr: true,
		},
		{
			name:    "unknown key",
			path:    "Pattern.Query.WEEKS",
			wantErr: true,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := Lookup(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				var notFound *NotFoundError
				require.True(t, errors.As(err, &notFound))
				assert.Equal(t, tt.path, notFound.Path)
				assert.Contains(t, err.Error(), "registry key not found")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, entry.Path)
			assert.Equal(t, tt.wantValue, entry.Value)
			assert.Equal(t, tt.wantKind, entry.Kind)
		})
	}
}

func TestEntries(t *testing.T) {
	all := Entries()
	assert.Len(t, all, 35)
	assert.Equal(t, "Pattern.DATE_TIME", all[0].Path)
	assert.Equal(t, "Runtime.DEFAULT_NAMESPACE", all[len(all)-1].Path)

	all[0].Value = "mutated"
	assert.Equal(t, "DD MMM YYYY, hh:mm A", Entries()[0].Value)
}

func TestEntriesInGroup(t *testing.T) {
	spans, err := EntriesInGroup("Span")
	require.NoError(t, err)
	require.Len(t, spans, 4)
	for _, entry := range spans {
		assert.Equal(t, "Span", entry.Group())
		assert.Equal(t, KindEnum, entry.Kind)
	}

	_, err = EntriesInGroup("Topology")
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestGroups(t *testing.T) {
	assert.Equal(t, []string{
		"Pattern", "Span", "InstanceKind", "Cell", "System",
		"CelleryType", "Status", "Dashboard", "Runtime",
	}, Groups())
}

func TestRegexEntriesCompile(t *testing.T) {
	for _, entry := range Entries() {
		if !entry.Kind.IsRegex() {
			continue
		}
		t.Run(entry.Path, func(t *testing.T) {
			_, err := regexp.Compile(entry.Value.(string))
			assert.NoError(t, err)
		})
	}
}

func TestVerify(t *testing.T) {
	assert.NoError(t, Verify())
}

func TestConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := Get()
			entry, err := Lookup("Pattern.Query.RELATIVE_TIME")
			assert.NoError(t, err)
			assert.Equal(t, r.Pattern.Query.RelativeTime, entry.Value)
			assert.NotEmpty(t, Entries())
		}()
	}
	wg.Wait()
}
