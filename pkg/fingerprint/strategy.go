package fingerprint

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
	"io"
	"strconv"

	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/types"
)

// ChunkSize is the read size used when streaming files through a digest
const ChunkSize = 64 * 1024

// Strategy computes the fingerprint of a single file
type Strategy interface {
	Method() types.Method
	Fingerprint(fsys types.FS, entry types.FileEntry) (types.Fingerprint, error)
}

// New returns the strategy for method
func New(method types.Method) (Strategy, error) {
	switch method {
	case types.MethodSize:
		return sizeStrategy{}, nil
	case types.MethodContent:
		return contentStrategy{}, nil
	case types.MethodSHA1:
		return digestStrategy{method: method, newHash: sha1.New}, nil
	case types.MethodMD5:
		return digestStrategy{method: method, newHash: md5.New}, nil
	case types.MethodSHA256:
		return digestStrategy{method: method, newHash: sha256.New}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown fingerprint method %q", string(method))
	}
}

type sizeStrategy struct{}

func (sizeStrategy) Method() types.Method { return types.MethodSize }

func (sizeStrategy) Fingerprint(_ types.FS, entry types.FileEntry) (types.Fingerprint, error) {
	return types.Fingerprint{
		Method: types.MethodSize,
		Value:  strconv.FormatInt(entry.Size, 10),
	}, nil
}

type contentStrategy struct{}

func (contentStrategy) Method() types.Method { return types.MethodContent }

func (contentStrategy) Fingerprint(fsys types.FS, entry types.FileEntry) (types.Fingerprint, error) {
	content, err := fsys.ReadFile(entry.Path)
	if err != nil {
		return types.Fingerprint{}, errors.Wrapf(err, errors.ErrFingerprint, "reading %s", entry.Path).
			WithDetail("path", entry.Path)
	}
	return types.Fingerprint{Method: types.MethodContent, Value: string(content)}, nil
}

type digestStrategy struct {
	method  types.Method
	newHash func() hash.Hash
}

func (d digestStrategy) Method() types.Method { return d.method }

func (d digestStrategy) Fingerprint(fsys types.FS, entry types.FileEntry) (types.Fingerprint, error) {
	sum, err := streamDigest(fsys, entry.Path, d.newHash())
	if err != nil {
		return types.Fingerprint{}, errors.Wrapf(err, errors.ErrFingerprint, "hashing %s", entry.Path).
			WithDetail("path", entry.Path).
			WithDetail("method", string(d.method))
	}
	return types.Fingerprint{Method: d.method, Value: string(sum)}, nil
}

// streamDigest feeds the file at name through h in ChunkSize reads
func streamDigest(fsys types.FS, name string, h hash.Hash) ([]byte, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	buf := make([]byte, ChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return h.Sum(nil), nil
}
