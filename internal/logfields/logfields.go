package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyDescriptor = "descriptor"
	KeyNamespace  = "namespace"
	KeyVersion    = "version"
	KeyVariable   = "variable"
	KeyPlatform   = "platform"
	KeyPath       = "path"
	KeyResource   = "resource_dir"
	KeyArchive    = "archive_path"
	KeyWorkDir    = "workdir"
	KeyCommand    = "command"
	KeyExitCode   = "exit_code"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Descriptor(p string) slog.Attr { return slog.String(KeyDescriptor, p) }
func Namespace(ns string) slog.Attr { return slog.String(KeyNamespace, ns) }
func Version(v string) slog.Attr    { return slog.String(KeyVersion, v) }
func Variable(n string) slog.Attr   { return slog.String(KeyVariable, n) }
func Platform(p string) slog.Attr   { return slog.String(KeyPlatform, p) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Resource(p string) slog.Attr   { return slog.String(KeyResource, p) }
func Archive(p string) slog.Attr    { return slog.String(KeyArchive, p) }
func WorkDir(d string) slog.Attr    { return slog.String(KeyWorkDir, d) }
func Command(c string) slog.Attr    { return slog.String(KeyCommand, c) }
func ExitCode(c int) slog.Attr      { return slog.Int(KeyExitCode, c) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
