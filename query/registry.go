package query

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/ini.v1"
)

const (
	defaultDomainSuffix = "analytics.db.svc.wikimedia.cloud"
	defaultDefaultsFile = ".my.cnf"
)

// Identity is the (project, extension) key identifying one logical
// replica database. An empty Extension means no extension database.
type Identity struct {
	Project   string
	Extension string
}

// Host returns the replica host descriptor for the identity:
// "extension.project" when an extension is present, else the project.
func (id Identity) Host() string {
	if id.Extension == "" {
		return id.Project
	}
	return fmt.Sprintf("%s.%s", id.Extension, id.Project)
}

// Site is the part of a wiki site object the registry needs: its
// project database name (e.g. "zhwiki"). A pywikibot-style site
// satisfies this through a thin adapter.
type Site interface {
	DBName() string
}

// Registry owns one database engine per identity. Identical identities
// requested at any time yield the identical *Database; entries live for
// the process duration and are never evicted (the identity space is
// bounded by the known project/extension pairs).
//
// Pass the registry to call sites explicitly rather than hiding it in a
// package-level singleton.
type Registry struct {
	domainSuffix string
	defaultsFile string

	// open builds the engine for an identity. Overridable in tests.
	open func(id Identity) (*sql.DB, error)

	mu        sync.Mutex
	databases map[Identity]*Database
}

// Option configures a Registry.
type Option func(*Registry)

// WithDomainSuffix overrides the replica host domain suffix.
func WithDomainSuffix(suffix string) Option {
	return func(r *Registry) {
		r.domainSuffix = suffix
	}
}

// WithDefaultsFile overrides the path of the MySQL defaults file
// supplying credentials.
func WithDefaultsFile(path string) Option {
	return func(r *Registry) {
		r.defaultsFile = path
	}
}

// NewRegistry constructs an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		domainSuffix: defaultDomainSuffix,
		defaultsFile: defaultDefaultsFile,
		databases:    make(map[Identity]*Database),
	}
	r.open = r.openEngine
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Database returns the cached database for (project, extension),
// creating and caching it on first request. The engine is built at most
// once per identity, also under concurrent first access: the
// create-if-absent step runs under the registry mutex. Query execution
// happens outside the mutex and never blocks unrelated identities.
func (r *Registry) Database(project, extension string) (*Database, error) {
	id := Identity{Project: project, Extension: extension}
	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.databases[id]; ok {
		return db, nil
	}

	engine, err := r.open(id)
	if err != nil {
		return nil, &ConnectionError{Host: id.Host(), Err: err}
	}
	db := &Database{
		Project:   project,
		Extension: extension,
		Host:      id.Host(),
		engine:    engine,
	}
	r.databases[id] = db
	LogInfof("created engine for %s (database %s_p)", db.Host, project)
	return db, nil
}

// DatabaseForSite derives the identity from a site collaborator plus an
// optional extension name and delegates to Database.
func (r *Registry) DatabaseForSite(site Site, extension string) (*Database, error) {
	return r.Database(site.DBName(), extension)
}

// openEngine assembles the replica DSN and opens the engine. Opening
// validates the configuration; the network dial happens lazily on the
// first lease.
func (r *Registry) openEngine(id Identity) (*sql.DB, error) {
	user, passwd, err := readDefaultsFile(r.defaultsFile)
	if err != nil {
		return nil, err
	}
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = passwd
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s.%s:3306", id.Host(), r.domainSuffix)
	cfg.DBName = id.Project + "_p"
	cfg.Params = map[string]string{"charset": "utf8"}
	return sql.Open("mysql", cfg.FormatDSN())
}

// readDefaultsFile reads user and password from the [client] section of
// a MySQL defaults file. go-sql-driver has no native defaults-file
// support, so the file is folded into the DSN here.
func readDefaultsFile(path string) (user, passwd string, err error) {
	file, err := ini.Load(path)
	if err != nil {
		return "", "", fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	client := file.Section("client")
	user = client.Key("user").String()
	passwd = client.Key("password").String()
	if user == "" {
		return "", "", fmt.Errorf("defaults file %s has no client user", path)
	}
	return user, passwd, nil
}
