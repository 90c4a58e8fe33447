package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindUnexpectedSignature,
				Encoding: "utf16le",
				Detail:   "signature present",
				Offset:   0,
			},
			contains: []string{"[decode]", "unexpected_signature", "utf16le", "offset 0", "signature present"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindNonExplicitEncoding,
				Offset: -1,
			},
			contains: []string{"[encode]", "non_explicit_encoding"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConvert,
				Kind:   KindInvalidData,
				Detail: "truncated sequence",
				Offset: 7,
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[convert]", "invalid_data", "offset 7", "truncated sequence", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase:  PhaseConvert,
		Kind:   KindInvalidData,
		Cause:  cause,
		Offset: -1,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:    PhaseDecode,
		Kind:     KindMissingSignature,
		Encoding: "unknown",
		Offset:   -1,
	}

	same := &Error{Phase: PhaseDecode, Kind: KindMissingSignature, Offset: -1}
	if !errors.Is(err, same) {
		t.Error("expected match on same phase and kind")
	}

	otherKind := &Error{Phase: PhaseDecode, Kind: KindUnexpectedSignature, Offset: -1}
	if errors.Is(err, otherKind) {
		t.Error("unexpected match on different kind")
	}

	otherPhase := &Error{Phase: PhaseEncode, Kind: KindMissingSignature, Offset: -1}
	if errors.Is(err, otherPhase) {
		t.Error("unexpected match on different phase")
	}

	if errors.Is(err, errors.New("plain")) {
		t.Error("unexpected match on plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("short read")
	err := New(PhaseConvert, KindBufferTooSmall).
		Encoding("utf32be").
		Offset(12).
		Detail("needed %d units", 4).
		Cause(cause).
		Build()

	if err.Phase != PhaseConvert || err.Kind != KindBufferTooSmall {
		t.Errorf("builder produced phase=%s kind=%s", err.Phase, err.Kind)
	}
	if err.Encoding != "utf32be" {
		t.Errorf("builder encoding = %q", err.Encoding)
	}
	if err.Offset != 12 {
		t.Errorf("builder offset = %d", err.Offset)
	}
	if err.Detail != "needed 4 units" {
		t.Errorf("builder detail = %q", err.Detail)
	}
	if !errors.Is(err, err) || err.Unwrap() != cause {
		t.Error("builder cause not preserved")
	}
}

func TestKind_Code(t *testing.T) {
	codes := map[Kind]int{
		KindMissingSignature:    1,
		KindUnexpectedSignature: 2,
		KindNonExplicitEncoding: 3,
		KindBufferTooSmall:      4,
		KindInvalidData:         5,
		KindUnknownEncoding:     6,
	}
	for k, want := range codes {
		if got := k.Code(); got != want {
			t.Errorf("Code(%s) = %d, want %d", k, got, want)
		}
	}
	if got := Kind("bogus").Code(); got != 0 {
		t.Errorf("Code(bogus) = %d, want 0", got)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"missing_signature", MissingSignature("utf16"), PhaseDecode, KindMissingSignature},
		{"unexpected_signature", UnexpectedSignature("utf8", []byte{0xEF, 0xBB, 0xBF}), PhaseDecode, KindUnexpectedSignature},
		{"non_explicit", NonExplicitEncoding("utf32"), PhaseEncode, KindNonExplicitEncoding},
		{"buffer_too_small", BufferTooSmall(PhaseConvert, 8, 2), PhaseConvert, KindBufferTooSmall},
		{"invalid_data", InvalidData("utf8 to utf16", 3, "lone surrogate"), PhaseConvert, KindInvalidData},
		{"unknown_encoding", UnknownEncoding("latin-1"), PhaseConfig, KindUnknownEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
