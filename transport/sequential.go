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

package transport

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"
	"sync"

	"github.com/blinklabs-io/ur-registry/cbor"
)

const partScheme = "ur:"

var ErrInvalidPart = errors.New("invalid part")

// InvalidPartError describes a part that could not be accepted by a decoder
type InvalidPartError struct {
	Part   string
	Reason string
	Err    error
}

func (e *InvalidPartError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid part %q: %s: %v", e.Part, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid part %q: %s", e.Part, e.Reason)
}

func (e *InvalidPartError) Unwrap() error { return e.Err }

func (*InvalidPartError) Is(target error) bool {
	return target == ErrInvalidPart
}

// fragment is the body of a multi-part part. The message length and checksum
// are repeated in every fragment so that a decoder can start at any part
type fragment struct {
	cbor.StructAsArray
	SeqNum     uint32
	SeqLen     uint32
	MessageLen uint32
	Checksum   uint32
	Data       []byte
}

// SequentialEncoder splits a payload into fixed-size fragments and cycles
// through them in order. Parts look like "ur:<type>/<seq>-<count>/<hex>",
// or "ur:<type>/<hex>" for a single part
type SequentialEncoder struct {
	mu        sync.Mutex
	typeName  string
	message   []byte
	checksum  uint32
	fragments [][]byte
	seqNum    uint32
}

func NewSequentialEncoder(
	payload []byte,
	maxFragmentLength int,
	typeName string,
) (*SequentialEncoder, error) {
	if err := checkTypeName(typeName); err != nil {
		return nil, err
	}
	if maxFragmentLength <= 0 {
		return nil, fmt.Errorf("invalid max fragment length: %d", maxFragmentLength)
	}
	if len(payload) == 0 {
		return nil, errors.New("cannot encode empty payload")
	}
	e := &SequentialEncoder{
		typeName: typeName,
		message:  append([]byte(nil), payload...),
		checksum: crc32.ChecksumIEEE(payload),
	}
	for start := 0; start < len(e.message); start += maxFragmentLength {
		end := min(start+maxFragmentLength, len(e.message))
		e.fragments = append(e.fragments, e.message[start:end])
	}
	return e, nil
}

// SequentialEncoderFactory is an EncoderFactory for SequentialEncoder
func SequentialEncoderFactory(
	payload []byte,
	maxFragmentLength int,
	typeName string,
) (Encoder, error) {
	enc, err := NewSequentialEncoder(payload, maxFragmentLength, typeName)
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func (e *SequentialEncoder) FragmentCount() int {
	return len(e.fragments)
}

func (e *SequentialEncoder) SinglePart() (string, error) {
	if len(e.fragments) != 1 {
		return "", fmt.Errorf("payload needs %d parts", len(e.fragments))
	}
	return partScheme + e.typeName + "/" + hex.EncodeToString(e.message), nil
}

func (e *SequentialEncoder) NextPart() (string, error) {
	e.mu.Lock()
	e.seqNum++
	seqNum := e.seqNum
	e.mu.Unlock()
	seqLen := uint32(len(e.fragments)) // #nosec G115
	body := fragment{
		SeqNum:     seqNum,
		SeqLen:     seqLen,
		MessageLen: uint32(len(e.message)), // #nosec G115
		Checksum:   e.checksum,
		Data:       e.fragments[(seqNum-1)%seqLen],
	}
	data, err := cbor.Encode(&body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"%s%s/%d-%d/%s",
		partScheme,
		e.typeName,
		seqNum,
		seqLen,
		hex.EncodeToString(data),
	), nil
}

// SequentialDecoder reassembles parts produced by SequentialEncoder. Parts
// may arrive in any order and repeats are ignored
type SequentialDecoder struct {
	mu         sync.Mutex
	typeName   string
	seqLen     uint32
	messageLen uint32
	checksum   uint32
	fragments  map[uint32][]byte
	message    []byte
}

func NewSequentialDecoder() *SequentialDecoder {
	return &SequentialDecoder{
		fragments: make(map[uint32][]byte),
	}
}

// TypeName returns the registry type name carried by the received parts
func (d *SequentialDecoder) TypeName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.typeName
}

func (d *SequentialDecoder) IsComplete() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message != nil
}

func (d *SequentialDecoder) Message() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.message == nil {
		return nil, nil
	}
	return append([]byte(nil), d.message...), nil
}

func (d *SequentialDecoder) Receive(part string) error {
	normalized := strings.ToLower(strings.TrimSpace(part))
	rest, ok := strings.CutPrefix(normalized, partScheme)
	if !ok {
		return &InvalidPartError{Part: part, Reason: "missing ur: prefix"}
	}
	components := strings.Split(rest, "/")
	if len(components) != 2 && len(components) != 3 {
		return &InvalidPartError{Part: part, Reason: "unexpected number of path components"}
	}
	typeName := components[0]
	if err := checkTypeName(typeName); err != nil {
		return &InvalidPartError{Part: part, Reason: "bad type name", Err: err}
	}
	data, err := hex.DecodeString(components[len(components)-1])
	if err != nil {
		return &InvalidPartError{Part: part, Reason: "bad payload encoding", Err: err}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.typeName != "" && d.typeName != typeName {
		return &InvalidPartError{
			Part:   part,
			Reason: fmt.Sprintf("type %s does not match %s", typeName, d.typeName),
		}
	}
	if d.message != nil {
		return nil
	}
	if len(components) == 2 {
		d.typeName = typeName
		d.message = data
		return nil
	}
	return d.receiveFragment(part, typeName, components[1], data)
}

func (d *SequentialDecoder) receiveFragment(part string, typeName string, seq string, data []byte) error {
	seqNum, seqLen, err := parseSequence(seq)
	if err != nil {
		return &InvalidPartError{Part: part, Reason: "bad sequence", Err: err}
	}
	var body fragment
	if _, err := cbor.Decode(data, &body); err != nil {
		return &InvalidPartError{Part: part, Reason: "bad fragment", Err: err}
	}
	if body.SeqNum != seqNum || body.SeqLen != seqLen {
		return &InvalidPartError{Part: part, Reason: "sequence does not match fragment"}
	}
	if len(d.fragments) == 0 {
		d.typeName = typeName
		d.seqLen = body.SeqLen
		d.messageLen = body.MessageLen
		d.checksum = body.Checksum
	} else if body.SeqLen != d.seqLen || body.MessageLen != d.messageLen || body.Checksum != d.checksum {
		return &InvalidPartError{Part: part, Reason: "fragment belongs to a different message"}
	}
	d.fragments[(body.SeqNum-1)%body.SeqLen] = body.Data
	if uint32(len(d.fragments)) < d.seqLen { // #nosec G115
		return nil
	}
	// The declared length is only trusted once the fragments add up to it
	total := 0
	for _, data := range d.fragments {
		total += len(data)
	}
	if uint64(total) != uint64(d.messageLen) {
		d.fragments = make(map[uint32][]byte)
		return &InvalidPartError{
			Part:   part,
			Reason: fmt.Sprintf("fragments hold %d bytes, message length is %d", total, d.messageLen),
		}
	}
	message := make([]byte, 0, total)
	for i := range d.seqLen {
		message = append(message, d.fragments[i]...)
	}
	if crc32.ChecksumIEEE(message) != d.checksum {
		// Start over rather than keep a corrupt fragment around
		d.fragments = make(map[uint32][]byte)
		return &InvalidPartError{Part: part, Reason: "reassembled message failed checksum"}
	}
	d.message = message
	return nil
}

func parseSequence(seq string) (uint32, uint32, error) {
	numStr, lenStr, ok := strings.Cut(seq, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected <seq>-<count>, got %q", seq)
	}
	seqNum, err := strconv.ParseUint(numStr, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	seqLen, err := strconv.ParseUint(lenStr, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	if seqNum == 0 || seqLen == 0 {
		return 0, 0, errors.New("sequence numbers start at 1")
	}
	return uint32(seqNum), uint32(seqLen), nil
}

func checkTypeName(typeName string) error {
	if typeName == "" {
		return errors.New("empty type name")
	}
	for _, c := range typeName {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("invalid character %q in type name", c)
		}
	}
	return nil
}
