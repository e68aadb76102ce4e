package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cantstop/communication"
	"cantstop/engine"

	"github.com/rs/zerolog/log"
)

type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) Board(ctx context.Context) ([]communication.Cell, error) {
	var cells []communication.Cell
	if err := c.get(ctx, "/board", &cells); err != nil {
		return nil, err
	}
	return cells, nil
}

func (c *Client) Turns(ctx context.Context) ([]engine.TurnResult, error) {
	var turns []engine.TurnResult
	if err := c.get(ctx, "/turns", &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// Watch polls the server every interval and calls fn with each turn it has not seen yet,
// along with the board as it was fetched. It stops when ctx is done or a turn is won.
func (c *Client) Watch(ctx context.Context, interval time.Duration, fn func([]communication.Cell, engine.TurnResult)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := 0
	for {
		turns, err := c.Turns(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("could not fetch turns")
		} else if fresh := unseen(turns, seen); len(fresh) > 0 {
			cells, err := c.Board(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("could not fetch board")
			} else {
				for _, turn := range fresh {
					fn(cells, turn)
					seen = turn.Step
					if turn.Won {
						return nil
					}
				}
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func unseen(turns []engine.TurnResult, seen int) []engine.TurnResult {
	for i, turn := range turns {
		if turn.Step > seen {
			return turns[i:]
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
