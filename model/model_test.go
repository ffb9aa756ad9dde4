package model

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtifact() Artifact {
	return Artifact{
		Name:         "linear-regression",
		Version:      "1",
		Features:     FieldNames(),
		Intercept:    100000,
		Coefficients: []float64{0, 1000, -1, 500, 2000, 0, 3000, 250, -5000},
	}
}

func writeArtifact(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, Save(path, testArtifact()))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "linear-regression", m.Name)
	assert.Equal(t, "1", m.Version)
}

func TestLoad_MissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_InvalidArtifacts(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		errSubstr string
	}{
		{
			name:      "corrupt json",
			contents:  "\x80\x04\x95pickle",
			errSubstr: "error decoding model artifact",
		},
		{
			name:      "too few features",
			contents:  `{"features":["yr_mfr"],"coefficients":[1]}`,
			errSubstr: "artifact has 1 features, expected 9",
		},
		{
			name: "wrong feature order",
			contents: `{"features":["fuel_type","yr_mfr","kms_run","body_type","transmission","registered_state","make","model","total_owners"],
				"coefficients":[1,2,3,4,5,6,7,8,9]}`,
			errSubstr: `artifact feature 0 is "fuel_type", expected "yr_mfr"`,
		},
		{
			name: "wrong coefficient count",
			contents: `{"features":["yr_mfr","fuel_type","kms_run","body_type","transmission","registered_state","make","model","total_owners"],
				"coefficients":[1,2,3]}`,
			errSubstr: "artifact has 3 coefficients, expected 9",
		},
		{
			name: "unknown bound",
			contents: `{"features":["yr_mfr","fuel_type","kms_run","body_type","transmission","registered_state","make","model","total_owners"],
				"coefficients":[1,2,3,4,5,6,7,8,9],"bounds":{"colour":{"min":0,"max":3}}}`,
			errSubstr: `bounds given for unknown feature "colour"`,
		},
		{
			name: "inverted bound",
			contents: `{"features":["yr_mfr","fuel_type","kms_run","body_type","transmission","registered_state","make","model","total_owners"],
				"coefficients":[1,2,3,4,5,6,7,8,9],"bounds":{"kms_run":{"min":10,"max":0}}}`,
			errSubstr: `bounds for "kms_run" have min 10 above max 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(writeArtifact(t, tt.contents))
			assert.Nil(t, m)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLinearModelPredict(t *testing.T) {
	m := NewLinearModel(testArtifact())

	// 100000 + 1*1000 - 45000 + 2*500 + 1*2000 + 5*3000 + 12*250 - 1*5000
	price, err := m.Predict(Features{2015, 1, 45000, 2, 1, 3, 5, 12, 1})
	require.NoError(t, err)
	assert.Equal(t, 72000.0, price)
}

func TestLinearModelPredict_Deterministic(t *testing.T) {
	m := NewLinearModel(testArtifact())
	f := Features{2018, 2, 30000, 1, 2, 7, 9, 40, 2}

	first, err := m.Predict(f)
	require.NoError(t, err)
	second, err := m.Predict(f)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLinearModelPredict_OutOfRange(t *testing.T) {
	a := testArtifact()
	a.Bounds = map[string]Bound{"total_owners": {Min: 1, Max: 5}}
	m := NewLinearModel(a)

	_, err := m.Predict(Features{2015, 1, 45000, 2, 1, 3, 5, 12, 9})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Contains(t, err.Error(), "total_owners=9 is outside [1, 5]")

	_, err = m.Predict(Features{2015, 1, 45000, 2, 1, 3, 5, 12, 5})
	assert.NoError(t, err)
}

func TestSave_RejectsInvalid(t *testing.T) {
	a := testArtifact()
	a.Coefficients = a.Coefficients[:4]

	err := Save(filepath.Join(t.TempDir(), "model.json"), a)
	assert.Error(t, err)
}

func TestLinearModelPredict_NonFinite(t *testing.T) {
	a := testArtifact()
	a.Coefficients[0] = 1e308
	m := NewLinearModel(a)

	_, err := m.Predict(Features{2015, 1, 45000, 2, 1, 3, 5, 12, 1})
	assert.True(t, errors.Is(err, ErrNonFinite))
}
