// Package errors provides the structured error type used across dexseed.
//
// Every failure that crosses a package boundary is an *Error with a Code,
// a message and, where useful, metadata such as the upstream URL:
//
//	err := errors.FromHTTPStatus(resp.StatusCode, url)
//	if errors.IsNotFound(err) {
//	    // the id does not exist upstream
//	}
//
// Config structs report missing dependencies through a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
//
// Upstream fetch failures are never fatal to a batch. They are logged by the
// fetcher and turned into placeholder values by the caller, so the codes
// here mostly serve logs and tests.
package errors
