package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *RSLEnvError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *RSLEnvError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Descriptor errors

func DescriptorNotFound(path string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryDescriptor, SeverityFatal, "project descriptor not found").
		WithContext("path", path)
}

func DescriptorMalformed(path string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryDescriptor, SeverityFatal, "project descriptor is malformed").
		WithContext("path", path)
}

func VersionMissing(path, namespace string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryDescriptor, SeverityFatal, "project version not found").
		WithContext("path", path).
		WithContext("namespace", namespace)
}

// Environment and filesystem errors

func WorkingDirError(operation string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "working directory unavailable").
		WithContext("operation", operation)
}

func EnvWriteFailed(variable string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryRuntime, SeverityFatal, "environment update failed").
		WithContext("variable", variable)
}

func PathsMissing(paths []string) *RSLEnvError {
	return New(CategoryFileSystem, SeverityError, "search path entries missing").
		WithContext("paths", paths)
}

// Git errors

func RepoRootNotFound(path string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryGit, SeverityFatal, "git worktree root not found").
		WithContext("path", path)
}

// Runtime errors

func WatchFailed(path string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryRuntime, SeverityFatal, "descriptor watch failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *RSLEnvError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
