// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cbor

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// Dump renders a value in CBOR diagnostic notation, one map entry or array
// item per line. Map entries are listed in key order so the output is stable
func Dump(v Value) string {
	var ret bytes.Buffer
	dumpValue(&ret, v.value, "")
	return ret.String()
}

func dumpValue(ret *bytes.Buffer, data any, prefix string) {
	newPrefix := prefix + "  "
	switch v := data.(type) {
	case nil:
		ret.WriteString("null")
	case string:
		fmt.Fprintf(ret, "%q", v)
	case ByteString:
		fmt.Fprintf(ret, "h'%s'", v.String())
	case []byte:
		fmt.Fprintf(ret, "h'%s'", hex.EncodeToString(v))
	case Tag:
		fmt.Fprintf(ret, "%d(", v.Number)
		dumpValue(ret, v.Content, prefix)
		ret.WriteString(")")
	case []any:
		if len(v) == 0 {
			ret.WriteString("[]")
			return
		}
		ret.WriteString("[\n")
		for _, val := range v {
			ret.WriteString(newPrefix)
			dumpValue(ret, val, newPrefix)
			ret.WriteString(",\n")
		}
		ret.WriteString(prefix + "]")
	case map[any]any:
		if len(v) == 0 {
			ret.WriteString("{}")
			return
		}
		keys := make([]any, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.SortFunc(keys, compareKeys)
		ret.WriteString("{\n")
		for _, key := range keys {
			ret.WriteString(newPrefix)
			dumpValue(ret, key, newPrefix)
			ret.WriteString(": ")
			dumpValue(ret, v[key], newPrefix)
			ret.WriteString(",\n")
		}
		ret.WriteString(prefix + "}")
	default:
		fmt.Fprintf(ret, "%v", v)
	}
}

// compareKeys orders integer keys numerically ahead of everything else, which
// is compared by its diagnostic form
func compareKeys(a, b any) int {
	ai, aok := keyInteger(a)
	bi, bok := keyInteger(b)
	switch {
	case aok && bok:
		if ai < bi {
			return -1
		}
		if ai > bi {
			return 1
		}
		return 0
	case aok:
		return -1
	case bok:
		return 1
	}
	var ab, bb bytes.Buffer
	dumpValue(&ab, a, "")
	dumpValue(&bb, b, "")
	return strings.Compare(ab.String(), bb.String())
}

func keyInteger(key any) (float64, bool) {
	switch x := key.(type) {
	case uint64:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
