package concar

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Juegos de caracteres soportados para los archivos de salida.
const (
	CharsetUTF8        = "utf-8"
	CharsetWindows1252 = "windows-1252"
	CharsetISO88591    = "iso-8859-1"
)

// lookupCharmap devuelve nil para UTF-8 (sin transcodificar).
func lookupCharmap(charset string) (*charmap.Charmap, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetUTF8, "utf8":
		return nil, nil
	case CharsetWindows1252, "cp1252", "ansi":
		return charmap.Windows1252, nil
	case CharsetISO88591, "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("concar: juego de caracteres no soportado %q", charset)
	}
}

// ValidCharset indica si charset es uno de los soportados.
func ValidCharset(charset string) bool {
	_, err := lookupCharmap(charset)
	return err == nil
}

// EncodeCharset transcodifica text al juego de caracteres indicado. Los caracteres que no
// existen en el destino se reemplazan por '?', de modo que cada carácter sigue ocupando un byte
// y las columnas del formato posicional no se desplazan.
func EncodeCharset(text, charset string) ([]byte, error) {
	cm, err := lookupCharmap(charset)
	if err != nil {
		return nil, err
	}
	if cm == nil {
		return []byte(text), nil
	}
	replace := runes.Map(func(r rune) rune {
		if _, ok := cm.EncodeRune(r); ok {
			return r
		}
		return '?'
	})
	out, _, err := transform.Bytes(transform.Chain(replace, cm.NewEncoder()), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("concar: transcodificar a %s: %w", charset, err)
	}
	return out, nil
}

// DecodeCharset convierte a UTF-8 un archivo escrito en charset.
func DecodeCharset(data []byte, charset string) (string, error) {
	cm, err := lookupCharmap(charset)
	if err != nil {
		return "", err
	}
	if cm == nil {
		return string(data), nil
	}
	out, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("concar: decodificar %s: %w", charset, err)
	}
	return string(out), nil
}
