package feedforward

import "compress/lzw"
import "encoding/json"
import "io"
import "math"
import "os"
import "strconv"

import "github.com/pkg/errors"

var (
	// ErrWeightCount is returned when saved weights do not fit the network.
	ErrWeightCount = errors.New("weight count mismatch")

	// ErrNonFinite is returned when a weight to be saved is NaN or infinite.
	ErrNonFinite = errors.New("non-finite weight")
)

// WriteCompressedWeightsToFile writes model weights to a lzw file
func (f FeedforwardNetwork) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create weights file")
	}
	err = f.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer as a lzw
// compressed JSON array, in GetParameters order. Nothing is written when a
// weight is not finite.
func (f FeedforwardNetwork) WriteCompressedWeights(w io.Writer) error {
	params := f.GetParameters()
	for i, p := range params {
		if math.IsNaN(p.Data()) || math.IsInf(p.Data(), 0) {
			return errors.Wrapf(ErrNonFinite, "parameter %d is %v", i, p.Data())
		}
	}
	lw := lzw.NewWriter(w, lzw.LSB, 8)

	_, err := lw.Write([]byte("[\n"))
	if err != nil {
		return err
	}
	var buf []byte
	for i, p := range params {
		buf = buf[:0]
		if i != 0 {
			buf = append(buf, ",\n"...)
		}
		buf = strconv.AppendFloat(buf, p.Data(), 'g', -1, 64)
		if _, err = lw.Write(buf); err != nil {
			return err
		}
	}
	if _, err = lw.Write([]byte("\n]\n")); err != nil {
		return err
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a lzw file
func (f FeedforwardNetwork) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open weights file")
	}
	defer file.Close()
	return f.ReadCompressedWeights(file)
}

// ReadCompressedWeights reads model weights from a reader and overwrites the
// parameter data. Gradients are left untouched. The network is not modified
// when the weight count does not match.
func (f *FeedforwardNetwork) ReadCompressedWeights(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var weights []float64
	if err := json.NewDecoder(lr).Decode(&weights); err != nil {
		return errors.Wrap(err, "decode weights")
	}
	params := f.GetParameters()
	if len(weights) != len(params) {
		return errors.Wrapf(ErrWeightCount, "got %d weights, network has %d parameters", len(weights), len(params))
	}
	for i, p := range params {
		p.SetData(weights[i])
	}
	return nil
}
