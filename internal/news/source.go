package news

import "github.com/sambawork38-pro/Cambliss/internal/models"

// Source is a read-only, possibly-changing collection of generated
// articles. Version increases whenever the article set changes, which
// lets the feed composer detect that a re-merge is needed without
// comparing article lists.
type Source interface {
	Articles() []models.Article
	Version() uint64
}
