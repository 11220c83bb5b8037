package rig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAngle_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Angle
	}{
		{`{"viewAngle": 30}`, "30"},
		{`{"viewAngle": "30"}`, "30"},
		{`{"viewAngle": -12.5}`, "-12.5"},
		{`{"viewAngle": null}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var p RecordParams
		require.NoError(t, json.Unmarshal([]byte(tt.in), &p), tt.in)
		assert.Equal(t, tt.want, p.ViewAngle, tt.in)
	}
}

func TestAngle_UnmarshalYAML(t *testing.T) {
	var p RecordParams
	require.NoError(t, yaml.Unmarshal([]byte("distance: 2\nviewAngle: 45\n"), &p))
	assert.Equal(t, Angle("45"), p.ViewAngle)
	assert.Equal(t, 2.0, p.Distance)

	require.NoError(t, yaml.Unmarshal([]byte("viewAngle: \"15deg\"\n"), &p))
	assert.Equal(t, Angle("15deg"), p.ViewAngle)

	require.NoError(t, yaml.Unmarshal([]byte("viewAngle: ~\n"), &p))
	assert.Equal(t, Angle(""), p.ViewAngle)

	err := yaml.Unmarshal([]byte("viewAngle: [1, 2]\n"), &p)
	assert.Error(t, err)
}

func TestRigJSONShape(t *testing.T) {
	r := Generate(ModelDimensions{X: 2, Y: 4, Z: 2}, nil, RecordParams{ViewAngle: Degrees(0)})
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Contains(t, out["spritesheet"], "position")
	assert.Contains(t, out["spritesheet"], "target")
	assert.Contains(t, out["icon"], "position")
	assert.Contains(t, out["icon"], "startAngle")
	assert.NotContains(t, out["icon"], "light")
	assert.NotContains(t, out["icon"], "Camera")
}

func TestOverridesYAML(t *testing.T) {
	src := `
icon:
  camera:
    target: [0, 1, 0]
    startAngle: 180
`
	var o Overrides
	require.NoError(t, yaml.Unmarshal([]byte(src), &o))
	cam := o.IconCamera()
	require.NotNil(t, cam)
	require.NotNil(t, cam.Target)
	assert.Nil(t, cam.Position)
	assert.Equal(t, 180.0, *cam.StartAngle)
}

func TestModelDimensionsMax(t *testing.T) {
	assert.Equal(t, 5.0, ModelDimensions{X: 1, Y: 5, Z: 2}.Max())
	assert.Equal(t, 0.0, ModelDimensions{}.Max())
}
