// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aclements/geomplot/geom"
)

func tagged(p geom.Primitive) map[string][]float64 {
	return map[string][]float64{p.Kind().String(): p.Vector().Values()}
}

// Marshal returns the JSON record for p, such as {"point":[1,2,3]}.
func Marshal(p geom.Primitive) ([]byte, error) {
	return json.Marshal(tagged(p))
}

// MarshalAll returns a JSON array of the records for ps.
func MarshalAll(ps []geom.Primitive) ([]byte, error) {
	recs := make([]map[string][]float64, len(ps))
	for i, p := range ps {
		recs[i] = tagged(p)
	}
	return json.Marshal(recs)
}

// Print writes ps to standard output as a single line, in the format
// read by Parse.
func Print(ps []geom.Primitive) error {
	return Fprint(os.Stdout, ps)
}

// Fprint writes ps to w as a single line, in the format read by Parse.
func Fprint(w io.Writer, ps []geom.Primitive) error {
	b, err := MarshalAll(ps)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
