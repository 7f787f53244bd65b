package serialization

import (
	"encoding/binary"
	"io"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/pkg/errors"
)

// MaxVarBytesLength is the maximum length ReadVarBytes agrees to read
const MaxVarBytesLength = 1 << 16

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	// Attempt to write the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case uint16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], e)
		return write(w, buf[:])

	case uint32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], e)
		return write(w, buf[:])

	case int64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		return write(w, buf[:])

	case uint64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], e)
		return write(w, buf[:])

	case *externalapi.DomainHash:
		return write(w, e.ByteSlice())

	case *externalapi.DomainTransactionID:
		return write(w, e.ByteSlice())
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVarBytes writes the length of data as a uint64, followed by data itself
func WriteVarBytes(w io.Writer, data []byte) error {
	err := WriteElement(w, uint64(len(data)))
	if err != nil {
		return err
	}
	return write(w, data)
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *uint16:
		var buf [2]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint16(buf[:])
		return nil

	case *uint32:
		var buf [4]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:])
		return nil

	case *int64:
		var buf [8]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = int64(binary.LittleEndian.Uint64(buf[:]))
		return nil

	case *uint64:
		var buf [8]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint64(buf[:])
		return nil

	case *externalapi.DomainTransactionID:
		var buf [externalapi.DomainHashSize]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = *externalapi.NewDomainTransactionIDFromByteArray(&buf)
		return nil
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarBytes reads data written by WriteVarBytes
func ReadVarBytes(r io.Reader) ([]byte, error) {
	var length uint64
	err := ReadElement(r, &length)
	if err != nil {
		return nil, err
	}
	if length > MaxVarBytesLength {
		return nil, errors.Wrapf(errMalformed, "variable length data of %d bytes "+
			"exceeds the maximum of %d", length, MaxVarBytesLength)
	}
	data := make([]byte, length)
	err = read(r, data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}

func write(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return errors.WithStack(err)
}

func read(r io.Reader, data []byte) error {
	_, err := io.ReadFull(r, data)
	return errors.WithStack(err)
}
