// Package strproto maps dualstr.Str to and from the protobuf
// google.protobuf.StringValue wrapper.
//
// Like the text, JSON and YAML codecs, decoding always yields an owned Str.
package strproto

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/rawbytedev/dualstr"
)

// ToProto wraps the content of s. The message holds its own copy.
func ToProto(s dualstr.Str) *wrapperspb.StringValue {
	return wrapperspb.String(s.String())
}

// FromProto returns an owned Str with the value of v. A nil v gives an empty
// owned Str.
func FromProto(v *wrapperspb.StringValue) dualstr.Str {
	return dualstr.Own(v.GetValue())
}

// Marshal encodes s as a StringValue message.
func Marshal(s dualstr.Str) ([]byte, error) {
	return proto.Marshal(ToProto(s))
}

// Unmarshal decodes a StringValue message into an owned Str.
func Unmarshal(b []byte) (dualstr.Str, error) {
	var v wrapperspb.StringValue
	if err := proto.Unmarshal(b, &v); err != nil {
		return dualstr.Str{}, err
	}
	return FromProto(&v), nil
}
