package wire

import "io"

// WriteOption writes an Option<T>'s presence byte and, if present, its
// body via encode.
func WriteOption[T any](w io.Writer, v *T, encode func(io.Writer, T) error) error {
	if err := WriteOptionPresence(w, v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return encode(w, *v)
}

// ReadOption reads an Option<T>'s presence byte and, if present, its body
// via decode.
func ReadOption[T any](r io.Reader, decode func(io.Reader) (T, error)) (*T, error) {
	present, err := ReadOptionPresence(r)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := decode(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteVec writes a Vec<T>'s u64 length prefix followed by each element
// in order.
func WriteVec[T any](w io.Writer, items []T, encode func(io.Writer, T) error) error {
	if err := WriteVecLen(w, len(items)); err != nil {
		return err
	}
	for _, item := range items {
		if err := encode(w, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadVec reads a Vec<T>'s u64 length prefix and that many elements.
func ReadVec[T any](r io.Reader, decode func(io.Reader) (T, error)) ([]T, error) {
	n, err := ReadVecLen(r)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
