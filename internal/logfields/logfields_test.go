package logfields

import (
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Descriptor", KeyDescriptor, "pom.xml", Descriptor("pom.xml")},
		{"Namespace", KeyNamespace, "urn:x", Namespace("urn:x")},
		{"Version", KeyVersion, "1.0.0", Version("1.0.0")},
		{"Variable", KeyVariable, "PYTHONPATH", Variable("PYTHONPATH")},
		{"Platform", KeyPlatform, "posix", Platform("posix")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Resource", KeyResource, "/r", Resource("/r")},
		{"Archive", KeyArchive, "/a.jar", Archive("/a.jar")},
		{"WorkDir", KeyWorkDir, "/repo", WorkDir("/repo")},
		{"Command", KeyCommand, "robot", Command("robot")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestExitCodeHelper(t *testing.T) {
	if v := ExitCode(3); v.Key != KeyExitCode || v.Value.Int64() != 3 {
		t.Fatalf("ExitCode mismatch: %s=%v", v.Key, v.Value)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
