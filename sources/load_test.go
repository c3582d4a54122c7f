package sources

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/arithlex/configs"
	"github.com/reusee/arithlex/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.txt")
	if err := os.WriteFile(path, []byte("(1*2)/0"), 0644); err != nil {
		t.Fatal(err)
	}
	testScope(t).Call(func(
		load Load,
	) {
		source, err := load(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if source.Name != path || source.Content != "(1*2)/0" {
			t.Fatalf("got %+v", source)
		}

		_, err = load(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestLoadStdin(t *testing.T) {
	testScope(t).Fork(
		func() Stdin {
			return strings.NewReader("7 + 4 - 5")
		},
	).Call(func(
		load Load,
	) {
		source, err := load(context.Background(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if source.Name != "<stdin>" || source.Content != "7 + 4 - 5" {
			t.Fatalf("got %+v", source)
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/expr" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "12 * 3")
	}))
	defer server.Close()

	testScope(t).Call(func(
		load Load,
		loadAll LoadAll,
	) {
		source, err := load(context.Background(), server.URL+"/expr")
		if err != nil {
			t.Fatal(err)
		}
		if source.Content != "12 * 3" {
			t.Fatalf("got %q", source.Content)
		}

		_, err = load(context.Background(), server.URL+"/nope")
		if err == nil || !strings.Contains(err.Error(), ErrBadStatus.Error()) {
			t.Fatalf("got %v", err)
		}

		sources, err := loadAll(context.Background(), []string{
			server.URL + "/expr",
			server.URL + "/expr",
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(sources) != 2 {
			t.Fatalf("got %d", len(sources))
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := loadAll(ctx, []string{server.URL + "/expr"}); err == nil {
			t.Fatal("should error")
		}
	})
}
