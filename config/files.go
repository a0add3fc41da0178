package config

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
)

// FileSystem abstracts the lookups the loader performs.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// OSFileSystem reads the real filesystem and process environment.
type OSFileSystem struct{}

func (OSFileSystem) Exists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// LoadEnv loads a .env file without overriding variables already set.
func (OSFileSystem) LoadEnv(p string) error {
	return godotenv.Load(p)
}

// Resolver locates the config.yml and .env files for a service.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles holds the chosen paths; an empty path means none was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles keeps explicit paths from opts and searches for the rest.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	files := ResolvedFiles{ConfigFile: opts.ConfigFile, EnvFile: opts.EnvFile}
	if files.ConfigFile == "" {
		files.ConfigFile = r.first(configCandidates(serviceName))
	}
	if files.EnvFile == "" {
		files.EnvFile = r.first(envCandidates(serviceName))
	}
	return files
}

func (r *Resolver) first(candidates []string) string {
	for _, c := range candidates {
		if r.FileSystem.Exists(c) {
			return c
		}
	}
	return ""
}

// serviceDirs lists the directories a service's files may live in, from
// most to least specific, up to two levels above the working directory.
// A hyphenated name is also tried by its last segment: "nestera-web" also
// matches cmd/web.
func serviceDirs(serviceName string) []string {
	names := []string{serviceName}
	if i := strings.LastIndex(serviceName, "-"); i >= 0 && i < len(serviceName)-1 {
		names = append(names, serviceName[i+1:])
	}

	var rel []string
	for _, n := range names {
		rel = append(rel, path.Join("cmd", n), path.Join("config", n))
	}
	rel = append(rel, "config", "")

	var dirs []string
	for _, up := range []string{".", "..", "../.."} {
		for _, d := range rel {
			dir := path.Join(up, d)
			if up == "." && dir != "." {
				dir = "./" + dir
			}
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func configCandidates(serviceName string) []string {
	var out []string
	for _, d := range serviceDirs(serviceName) {
		out = append(out, d+"/config.yml")
	}
	return out
}

func envCandidates(serviceName string) []string {
	var out []string
	for _, name := range []string{".env." + serviceName, ".env"} {
		for _, d := range serviceDirs(serviceName) {
			out = append(out, d+"/"+name)
		}
	}
	return out
}
