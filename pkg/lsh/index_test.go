package lsh

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_Deterministic(t *testing.T) {
	a := Signature("Alameda County")
	b := Signature("Alameda County")
	assert.Equal(t, a, b)
	assert.Len(t, a, numHashes)
}

func TestSignature_NormalizesWhitespaceAndCase(t *testing.T) {
	assert.Equal(t, Signature("Alameda  County"), Signature("alameda county"))
}

func TestEstimateJaccard(t *testing.T) {
	a := Signature("Alameda")
	assert.Equal(t, 1.0, estimateJaccard(a, a))
	assert.Equal(t, 0.0, estimateJaccard(a, nil))

	similar := estimateJaccard(Signature("Alameda County"), Signature("Alameda Count"))
	dissimilar := estimateJaccard(Signature("Alameda County"), Signature("zyxw qrs"))
	assert.Greater(t, similar, dissimilar)
}

func TestIndexQuery(t *testing.T) {
	ix := NewIndex()
	ix.Add("schools", "County", "Alameda")
	ix.Add("schools", "County", "Santa Clara")
	ix.Add("schools", "City", "Oakland")
	require.Equal(t, 3, ix.Len())

	matches := ix.Query("Alameda", 5, 0.3)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Alameda", matches[0].Value)
	assert.Equal(t, "schools", matches[0].Table)
	assert.Equal(t, "County", matches[0].Column)
	assert.Equal(t, 1.0, matches[0].Similarity)
}

func TestIndexQuery_TopNAndThreshold(t *testing.T) {
	ix := NewIndex()
	ix.Add("t", "c", "apple pie")
	ix.Add("t", "c", "apple pies")
	ix.Add("t", "c", "apple tart")

	matches := ix.Query("apple pie", 1, 0.1)
	assert.Len(t, matches, 1)
	assert.Equal(t, "apple pie", matches[0].Value)

	assert.Empty(t, ix.Query("completely unrelated words", 5, 0.99))
	assert.Nil(t, ix.Query("apple", 0, 0.1))
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	ix := NewIndex()
	ix.Add("schools", "County", "Alameda")
	ix.Add("districts", "Name", "Oakland Unified")

	path := filepath.Join(t.TempDir(), "lsh", "db.gob")
	require.NoError(t, ix.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ix.Len(), loaded.Len())

	orig := ix.Query("Alameda", 3, 0.3)
	round := loaded.Query("Alameda", 3, 0.3)
	assert.Equal(t, orig, round)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.gob"))
	assert.Error(t, err)
}

func TestIndexPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "lsh", "sales.gob"), IndexPath("data", "sales"))
}
