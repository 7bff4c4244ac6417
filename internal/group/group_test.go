package group_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goblt/internal/group"
	"github.com/alexiusacademia/goblt/internal/statics"
)

const basePlateJSON = `{
  "name": "Base plate BP-3",
  "units": "N, mm",
  "fasteners": [
    {"x": -75, "y": -100, "z": 0},
    {"x": 75, "y": -100, "z": 0},
    {"x": -75, "y": 100, "z": 0},
    {"x": 75, "y": 100, "z": 0}
  ],
  "loads": [
    {
      "point": {"x": 0, "y": 0, "z": 1500},
      "force": {"x": -1200, "y": 2000, "z": -3000},
      "case": "dead",
      "description": "column reaction"
    },
    {
      "point": {"x": 0, "y": 800, "z": 1100},
      "force": {"x": 3200, "y": 1200, "z": -1200},
      "moment": {"x": -1500000, "y": 2000000, "z": -3200000},
      "case": "wind"
    }
  ]
}`

func writeGroupFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "group.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	grp, err := group.LoadFromFile(writeGroupFile(t, basePlateJSON))
	require.NoError(t, err)

	assert.Equal(t, "Base plate BP-3", grp.Name)
	assert.Equal(t, "N, mm", grp.Units)
	require.Len(t, grp.Fasteners, 4)
	require.Len(t, grp.Loads, 2)

	assert.Equal(t, "column reaction", grp.Loads[0].Description)
	assert.Equal(t, r3.Vector{X: -1500000, Y: 2000000, Z: -3200000}, grp.Loads[1].Moment.Vec())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := group.LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	_, err := group.LoadFromFile(writeGroupFile(t, "{not json"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		grp     group.Group
		wantMsg string
	}{
		{
			name:    "empty group",
			grp:     group.Group{},
			wantMsg: "at least one load or fastener",
		},
		{
			name: "loads without reference or fasteners",
			grp: group.Group{
				Loads: []group.Load{{Force: group.Vector{X: 1}}},
			},
			wantMsg: "reference point or a fastener pattern",
		},
		{
			name: "partially weighted fasteners",
			grp: group.Group{
				Fasteners: []group.Fastener{
					{X: 0, Area: 314.16},
					{X: 100},
				},
			},
			wantMsg: "fastener 2 must have positive area",
		},
		{
			name: "unknown load case",
			grp: group.Group{
				Reference: &group.Point{},
				Loads: []group.Load{
					{Force: group.Vector{X: 1}, Case: "dead"},
					{Force: group.Vector{X: 1}, Case: "snow"},
				},
			},
			wantMsg: `load 2: unknown load case "snow"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grp.Validate()
			require.Error(t, err)

			var invalid *group.ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	grp := group.Group{
		Reference: &group.Point{X: 1, Y: 2, Z: 3},
		Loads:     []group.Load{{Force: group.Vector{Z: -10}, Case: "Live"}},
	}
	require.NoError(t, grp.Validate())
}

func TestReferencePoint_ExplicitWins(t *testing.T) {
	grp := group.Group{
		Reference: &group.Point{X: 10, Y: 20, Z: 30},
		Fasteners: []group.Fastener{{X: -75}, {X: 75}},
	}

	ref, err := grp.ReferencePoint()
	require.NoError(t, err)
	assert.Equal(t, r3.Vector{X: 10, Y: 20, Z: 30}, ref)
}

func TestReferencePoint_CentroidFallback(t *testing.T) {
	grp := group.Group{
		Fasteners: []group.Fastener{
			{X: -75, Y: -100},
			{X: 75, Y: -100},
			{X: -75, Y: 100},
			{X: 75, Y: 100},
		},
	}

	ref, err := grp.ReferencePoint()
	require.NoError(t, err)
	assert.Equal(t, r3.Vector{}, ref)
}

func TestReferencePoint_AreaWeighted(t *testing.T) {
	grp := group.Group{
		Fasteners: []group.Fastener{
			{X: 0, Area: 100},
			{X: 100, Area: 300},
		},
	}

	ref, err := grp.ReferencePoint()
	require.NoError(t, err)
	assert.InDelta(t, 75, ref.X, 1e-9)
}

func TestStaticsLoads_PreservesOrder(t *testing.T) {
	grp, err := group.LoadFromFile(writeGroupFile(t, basePlateJSON))
	require.NoError(t, err)

	loads := grp.StaticsLoads()
	require.Len(t, loads, 2)
	assert.Equal(t, r3.Vector{X: 0, Y: 0, Z: 1500}, loads[0].Point)
	assert.Equal(t, r3.Vector{X: 3200, Y: 1200, Z: -1200}, loads[1].Force)
}

func TestCaseLoads(t *testing.T) {
	grp, err := group.LoadFromFile(writeGroupFile(t, basePlateJSON))
	require.NoError(t, err)

	byCase := grp.CaseLoads()
	require.Len(t, byCase["dead"], 1)
	require.Len(t, byCase["wind"], 1)
	assert.Empty(t, byCase[""])
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		want    statics.Load
		wantErr string
	}{
		{
			name:   "force only",
			record: "0,0,1500,-1200,2000,-3000",
			want: statics.Load{
				Point: r3.Vector{X: 0, Y: 0, Z: 1500},
				Force: r3.Vector{X: -1200, Y: 2000, Z: -3000},
			},
		},
		{
			name:   "force and moment with spaces",
			record: "0, 800, 1100, 3200, 1200, -1200, -1500000, 2000000, -3200000",
			want: statics.Load{
				Point:  r3.Vector{X: 0, Y: 800, Z: 1100},
				Force:  r3.Vector{X: 3200, Y: 1200, Z: -1200},
				Moment: r3.Vector{X: -1500000, Y: 2000000, Z: -3200000},
			},
		},
		{
			name:    "too few fields",
			record:  "1,2,3,4",
			wantErr: "expected 6 or 9 comma-separated values, got 4",
		},
		{
			name:    "seven fields",
			record:  "1,2,3,4,5,6,7",
			wantErr: "expected 6 or 9 comma-separated values, got 7",
		},
		{
			name:    "non-numeric field",
			record:  "1,2,3,4,five,6",
			wantErr: "field 5 is not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := group.ParseRecord(tt.record)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecords_ReportsPosition(t *testing.T) {
	_, err := group.ParseRecords([]string{
		"0,0,0,1,2,3",
		"bad record",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load 2:")
}

func TestParsePoint(t *testing.T) {
	p, err := group.ParsePoint(" 1.5, -2, 3 ")
	require.NoError(t, err)
	assert.Equal(t, group.Point{X: 1.5, Y: -2, Z: 3}, p)

	_, err = group.ParsePoint("1,2")
	require.Error(t, err)

	_, err = group.ParsePoint("1,x,3")
	require.Error(t, err)
}
