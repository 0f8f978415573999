// Package mnist reads the MNIST handwritten digit dataset in IDX format
package mnist

import "bufio"
import "compress/gzip"
import "encoding/binary"
import "io"
import "os"
import "strings"

import "github.com/neurlang/micrograd/datasets"
import "github.com/pkg/errors"

// original
const ImgSize = 28

// downscaled
const SmallImgSize = 13

// Classes is the number of digit classes.
const Classes = 10

const (
	imagesMagic = 2051
	labelsMagic = 2049
)

var (
	// ErrMagic is returned for a file that does not start with the IDX
	// magic number of its kind.
	ErrMagic = errors.New("invalid magic number")

	// ErrCountMismatch is returned when the image and label files hold a
	// different number of items.
	ErrCountMismatch = errors.New("image count and label count do not match")

	// ErrTooMany is returned when more samples are requested than the files
	// hold.
	ErrTooMany = errors.New("more samples requested than available")
)

// Read loads the first count samples from an IDX image file and an IDX label
// file. Files ending in .gz are decompressed on the fly. A count of 0 reads
// every sample.
func Read(imagesPath, labelsPath string, count int) (datasets.Dataset, error) {
	images, err := open(imagesPath)
	if err != nil {
		return nil, err
	}
	defer images.Close()
	labels, err := open(labelsPath)
	if err != nil {
		return nil, err
	}
	defer labels.Close()
	return ReadFrom(images, labels, count)
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

func open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open '%s'", name)
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "gzip file '%s'", name)
	}
	return gzipFile{Reader: gz, f: f}, nil
}

func readHeader(r io.Reader, fields []uint32) error {
	for i := range fields {
		if err := binary.Read(r, binary.BigEndian, &fields[i]); err != nil {
			return errors.Wrap(err, "read header")
		}
	}
	return nil
}

// ReadFrom loads samples from IDX streams. Pixels are scaled to [0, 1] and
// the target of each sample is the ±1 one-hot vector of its label.
func ReadFrom(images, labels io.Reader, count int) (datasets.Dataset, error) {
	ir, lr := bufio.NewReader(images), bufio.NewReader(labels)

	var ih [4]uint32
	if err := readHeader(ir, ih[:1]); err != nil {
		return nil, errors.Wrap(err, "images")
	}
	if ih[0] != imagesMagic {
		return nil, errors.Wrapf(ErrMagic, "images: %d", ih[0])
	}
	var lh [2]uint32
	if err := readHeader(lr, lh[:1]); err != nil {
		return nil, errors.Wrap(err, "labels")
	}
	if lh[0] != labelsMagic {
		return nil, errors.Wrapf(ErrMagic, "labels: %d", lh[0])
	}
	if err := readHeader(ir, ih[1:]); err != nil {
		return nil, errors.Wrap(err, "images")
	}
	if err := readHeader(lr, lh[1:]); err != nil {
		return nil, errors.Wrap(err, "labels")
	}
	n, rows, cols := int(ih[1]), int(ih[2]), int(ih[3])
	if n != int(lh[1]) {
		return nil, errors.Wrapf(ErrCountMismatch, "%d images, %d labels", n, lh[1])
	}
	if count > n {
		return nil, errors.Wrapf(ErrTooMany, "%d requested, %d available", count, n)
	}
	if count <= 0 {
		count = n
	}

	set := make(datasets.Dataset, count)
	pixels := make([]byte, rows*cols)
	for i := range set {
		if _, err := io.ReadFull(ir, pixels); err != nil {
			return nil, errors.Wrapf(err, "image %d", i)
		}
		label, err := lr.ReadByte()
		if err != nil {
			return nil, errors.Wrapf(err, "label %d", i)
		}
		if label >= Classes {
			return nil, errors.Wrapf(datasets.ErrLabel, "label %d: %d", i, label)
		}
		input := make([]float64, len(pixels))
		for j, p := range pixels {
			input[j] = float64(p) / 255.0
		}
		set[i] = datasets.Sample{
			Input:  input,
			Label:  int(label),
			Target: datasets.OneHot(int(label), Classes),
		}
	}
	return set, nil
}

func max4(a, b, c, d float64) (o float64) {
	o = a
	if b > o {
		o = b
	}
	if c > o {
		o = c
	}
	if d > o {
		o = d
	}
	return o
}

// Downscale reduces a 28x28 image to 13x13 by taking the maximum of each
// 2x2 block, skipping the first row and column.
func Downscale(img []float64) []float64 {
	small := make([]float64, SmallImgSize*SmallImgSize)
	const base = 1 + ImgSize
	for y := 0; y < SmallImgSize; y++ {
		for x := 0; x < SmallImgSize; x++ {
			p := base + 2*x + 2*y*ImgSize
			small[y*SmallImgSize+x] = max4(img[p], img[p+1], img[p+ImgSize], img[p+ImgSize+1])
		}
	}
	return small
}

// DownscaleSet returns a copy of d with every input downscaled.
func DownscaleSet(d datasets.Dataset) datasets.Dataset {
	o := make(datasets.Dataset, len(d))
	for i, s := range d {
		o[i] = s
		o[i].Input = Downscale(s.Input)
	}
	return o
}

// Render draws a square image as text, one character per pixel.
func Render(img []float64) string {
	const ramp = " .:-=+*#%@"
	side := 1
	for side*side < len(img) {
		side++
	}
	var sb strings.Builder
	for i, p := range img {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		sb.WriteByte(ramp[int(p*float64(len(ramp)-1)+0.5)])
		if i%side == side-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
