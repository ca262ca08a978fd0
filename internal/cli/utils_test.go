package cli

import (
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"textsteg/test"
)

func init() {
	color.NoColor = true
}

func writeTestImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, test.GenerateImage(width, height, false)))
	return path
}
