package jobs

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/pagebuilder/internal/store"
	"github.com/sirupsen/logrus"
)

const pruneTimeout = time.Minute

var _ CronJob = (*RevisionPruner)(nil)

// RevisionPruner keeps the newest revisions of every page and deletes the
// rest.
type RevisionPruner struct {
	store    store.PageRevisionStore
	keep     int
	schedule string
}

func NewRevisionPruner(store store.PageRevisionStore, keep int, schedule string) *RevisionPruner {
	if keep < 1 {
		keep = 1
	}

	return &RevisionPruner{
		store:    store,
		keep:     keep,
		schedule: schedule,
	}
}

func (p *RevisionPruner) Schedule() string {
	return p.schedule
}

func (p *RevisionPruner) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	removed, err := p.Prune(ctx)
	if err != nil {
		logrus.Errorf("error pruning page revisions: %v", err)
		return
	}
	if removed > 0 {
		logrus.Infof("pruned %d page revisions", removed)
	}
}

// Prune deletes every revision beyond the newest keep of each page.
func (p *RevisionPruner) Prune(ctx context.Context) (int64, error) {
	versions, err := p.store.ListRevisionVersions(ctx)
	if err != nil {
		return 0, err
	}

	remove := make(map[string]mapset.Set[int64])
	for pageID, list := range versions {
		if len(list) <= p.keep {
			continue
		}
		remove[pageID] = mapset.NewSet[int64](list[p.keep:]...)
	}
	if len(remove) == 0 {
		return 0, nil
	}

	return p.store.DeletePageRevisions(ctx, remove)
}
