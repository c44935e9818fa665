package internal

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

var inspectTemplate = template.Must(template.ParseFS(templatesFS, "inspect.html"))

type InspectRow struct {
	Key       string
	Timestamp string
	EntityID  string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// Inspector serves a read-only page over the session store so the draws can
// be looked at before the process exits and the in-memory store is gone.
type Inspector struct {
	db            *badger.DB
	log           *slog.Logger
	defaultPrefix string
	mapper        RowMapper
	stats         StatsProvider
	resume        chan struct{}
}

func NewInspector(db *badger.DB, log *slog.Logger, defaultPrefix string, mapper RowMapper, stats StatsProvider) *Inspector {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return &Inspector{
		db:            db,
		log:           log,
		defaultPrefix: defaultPrefix,
		mapper:        mapper,
		stats:         stats,
		resume:        make(chan struct{}, 1),
	}
}

func (i *Inspector) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspect", i.inspect)
	mux.HandleFunc("/resume", func(w http.ResponseWriter, r *http.Request) {
		select {
		case i.resume <- struct{}{}:
		default:
		}
		fmt.Fprint(w, "RESUMED")
	})
	return mux
}

func (i *Inspector) inspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = i.defaultPrefix
	}

	data := PageData{
		Prefix: prefix,
		Stats:  make(map[string]any),
	}
	if i.stats != nil {
		data.Stats = i.stats()
	}

	err := i.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				data.Items = append(data.Items, i.mapper(string(item.Key()), val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = inspectTemplate.Execute(w, data); err != nil {
		i.log.Warn("Inspect page rendering failed", "error", err)
	}
}

// Serve listens on addr and blocks until /resume is requested or ctx is done.
func (i *Inspector) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("inspector listening on %s: %w", addr, err)
	}
	server := &http.Server{Handler: i.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.Serve(listener)
	}()

	url := fmt.Sprintf("http://%s/inspect?prefix=%s", listener.Addr(), i.defaultPrefix)
	fmt.Printf("\n--- SESSION PAUSED ---\n\n%s\n\n----------------------\n", url)
	i.log.Debug("Session inspector started", "url", url)

	select {
	case <-i.resume:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// DefaultMapper reads keys shaped as "{namespace}:{unix nano}:{id}".
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.SplitN(key, ":", 3)
	row := InspectRow{
		Key:       key,
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	if len(parts) == 3 {
		if tsNano, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
		row.EntityID = parts[2]
		if len(row.EntityID) > 8 {
			row.EntityID = row.EntityID[:8]
		}
	}
	return row
}
