package trainer

import "os"

import "github.com/pkg/errors"

// WeightsReader loads stored parameter values.
type WeightsReader interface {
	ReadCompressedWeightsFromFile(name string) error
}

// Resume loads the weights saved at path into net. An empty path or a
// missing file leaves net untouched and reports false.
func Resume(net WeightsReader, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err := net.ReadCompressedWeightsFromFile(path); err != nil {
		return false, errors.Wrapf(err, "resume from %s", path)
	}
	return true, nil
}
