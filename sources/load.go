package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/arithlex/logs"
	"github.com/reusee/arithlex/nets"
)

var ErrBadStatus = errors.New("bad http status")

// Load materializes a whole source. ref is "-" for stdin, an http or https URL, or a file path.
type Load func(ctx context.Context, ref string) (*Source, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (*Source, error) {
		var content []byte
		var err error

		switch {

		case ref == "-":
			content, err = io.ReadAll(stdin)
			if err != nil {
				return nil, wrap(fmt.Errorf("read stdin: %w", err))
			}
			return New("<stdin>", string(content)), nil

		case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
			content, err = fetch(ctx, client, ref)
			if err != nil {
				return nil, err
			}

		default:
			content, err = os.ReadFile(ref)
			if err != nil {
				return nil, wrap(fmt.Errorf("read %s: %w", ref, err))
			}

		}

		logger.DebugContext(ctx, "source loaded",
			"ref", ref,
			"bytes", len(content),
		)
		return New(ref, string(content)), nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wrap(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, wrap(fmt.Errorf("fetch %s: %w", url, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, wrap(fmt.Errorf("fetch %s: %w: %s", url, ErrBadStatus, resp.Status))
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(fmt.Errorf("fetch %s: %w", url, err))
	}
	return content, nil
}

type LoadAll func(ctx context.Context, refs []string) ([]*Source, error)

func (Module) LoadAll(
	load Load,
) LoadAll {
	return func(ctx context.Context, refs []string) ([]*Source, error) {
		ret := make([]*Source, 0, len(refs))
		for _, ref := range refs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			source, err := load(ctx, ref)
			if err != nil {
				return nil, err
			}
			ret = append(ret, source)
		}
		return ret, nil
	}
}
