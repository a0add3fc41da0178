// Package version exposes the nestera-web build identity.
//
// Values are injected at build time:
//
//	go build -ldflags "-X github.com/nestera/nestera-web/version.Version=1.2.0 \
//	    -X github.com/nestera/nestera-web/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Fields left empty fall back to the VCS stamp in runtime/debug build info.
package version
