package config

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/maps"
)

// connKeys mapea las claves del archivo de conexión a claves de Config.
var connKeys = map[string]string{
	"host":     "database.host",
	"port":     "database.port",
	"database": "database.name",
	"dbname":   "database.name",
	"user":     "database.user",
	"password": "database.password",
	"sslmode":  "database.ssl_mode",
}

// Parser implementa koanf.Parser para archivos del estilo:
//
//	host='localhost';
//	port='5432';
//	database='escola';
//
// Una asignación por línea; comillas y ';' final son opcionales.
// Líneas vacías y las que empiezan con '#' se ignoran.
type Parser struct{}

func ConnParser() *Parser {
	return &Parser{}
}

func (p *Parser) Unmarshal(b []byte) (map[string]interface{}, error) {
	flat := map[string]interface{}{}

	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		k, v, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value", line)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = unquote(strings.TrimSuffix(strings.TrimSpace(v), ";"))

		key, known := connKeys[k]
		if !known {
			// claves desconocidas se aceptan tal cual (ej. "http.addr")
			key = k
		}
		flat[key] = v
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return maps.Unflatten(flat, "."), nil
}

// Marshal escribe el formato inverso; solo claves planas.
func (p *Parser) Marshal(m map[string]interface{}) ([]byte, error) {
	flat, _ := maps.Flatten(m, nil, ".")

	reverse := make(map[string]string, len(connKeys))
	for short, full := range connKeys {
		if prev, ok := reverse[full]; !ok || len(short) > len(prev) {
			reverse[full] = short
		}
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		name := k
		if short, ok := reverse[k]; ok {
			name = short
		}
		fmt.Fprintf(&buf, "%s='%v';\n", name, flat[k])
	}
	return buf.Bytes(), nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
