package egl

import "testing"

func TestErrorString(t *testing.T) {
	tests := []struct {
		code int32
		want string
	}{
		{Success, "EGL_SUCCESS"},
		{BadMatch, "EGL_BAD_MATCH"},
		{BadNativeWindow, "EGL_BAD_NATIVE_WINDOW"},
		{0x1234, "0x00001234"},
	}
	for _, tt := range tests {
		if got := ErrorString(tt.code); got != tt.want {
			t.Fatalf("ErrorString(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAttribPtr(t *testing.T) {
	if attribPtr(nil) != nil {
		t.Fatal("expected nil pointer for empty attribute list")
	}
	attribs := []int32{RenderableType, OpenGLES2Bit, None}
	if p := attribPtr(attribs); p == nil || *p != RenderableType {
		t.Fatal("expected pointer to first attribute")
	}
}
