package news

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// Categories is the fixed set of news categories articles are generated for.
var Categories = []string{
	"breaking", "politics", "india", "world", "business",
	"technology", "sports", "entertainment", "health",
}

var headlines = map[string][]string{
	"breaking":      {"Emergency services respond to major incident in %s", "Government announces sweeping reforms for %s sector", "Markets react sharply to developments in %s"},
	"politics":      {"Parliament debates new legislation on %s", "Opposition demands inquiry into %s policy", "Coalition talks stall over %s disagreement"},
	"india":         {"Infrastructure push accelerates across %s corridor", "Monsoon outlook improves for %s region", "New metro line opens in %s"},
	"world":         {"Leaders gather for summit on %s", "Trade negotiations resume between %s partners", "Relief efforts expand in %s"},
	"business":      {"Startup funding rebounds in %s market", "Quarterly earnings beat expectations for %s firms", "Regulators review merger activity in %s industry"},
	"technology":    {"Researchers unveil breakthrough in %s", "Chip makers ramp up production for %s demand", "Open source project reshapes %s tooling"},
	"sports":        {"Underdogs stun favourites in %s final", "Record crowd watches %s championship", "Selectors announce squad for %s series"},
	"entertainment": {"Festival lineup announced for %s season", "Acclaimed director returns with %s feature", "Streaming numbers surge for %s drama"},
	"health":        {"Study links exercise to improved %s outcomes", "Hospitals expand capacity for %s care", "Nutrition guidelines updated for %s"},
}

var topics = map[string][]string{
	"breaking":      {"the capital", "energy", "transport"},
	"politics":      {"taxation", "education", "housing"},
	"india":         {"Delhi-Mumbai", "coastal", "Bengaluru"},
	"world":         {"climate", "Pacific", "border regions"},
	"business":      {"fintech", "retail", "logistics"},
	"technology":    {"battery storage", "AI accelerator", "developer"},
	"sports":        {"cricket", "football", "hockey"},
	"entertainment": {"awards", "indie film", "crime"},
	"health":        {"cardiac", "maternal", "preventive"},
}

var authors = []string{
	"Priya Sharma", "Rahul Verma", "Ananya Iyer", "David Chen",
	"Meera Krishnan", "Arjun Patel", "Sofia Martinez", "Vikram Rao",
}

const sourceName = "Cambliss Wire"

const wordsPerMinute = 200

// Generator produces synthetic news articles per category. It implements
// Source; Refresh replaces the whole article set and bumps the version.
type Generator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	perCat   int
	articles []models.Article
	version  uint64
}

// NewGenerator creates a generator producing perCategory articles for
// each category and runs the first generation round.
func NewGenerator(perCategory int, seed int64) *Generator {
	if perCategory <= 0 {
		perCategory = 10
	}
	g := &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		perCat: perCategory,
	}
	g.Refresh()
	return g
}

// Refresh regenerates the full article set.
func (g *Generator) Refresh() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.version++
	now := time.Now()
	articles := make([]models.Article, 0, g.perCat*len(Categories))

	for _, cat := range Categories {
		for i := 0; i < g.perCat; i++ {
			topic := pick(g.rng, topics[cat])
			title := fmt.Sprintf(pick(g.rng, headlines[cat]), topic)
			author := pick(g.rng, authors)
			content := buildContent(title, topic, cat)

			// Stable id for this (category, index, round) so interaction
			// records keyed by it survive within a generation round.
			id := uuid.NewSHA1(uuid.NameSpaceURL,
				[]byte(fmt.Sprintf("cambliss/news/%d/%s/%d", g.version, cat, i))).String()

			articles = append(articles, models.Article{
				ID:          id,
				Title:       title,
				Summary:     title + ". Full coverage and analysis inside.",
				Content:     content,
				ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/450", id[:8]),
				Author:      author,
				PublishedAt: now.Add(-time.Duration(g.rng.Intn(g.perCat*20)) * time.Minute),
				Category:    cat,
				Source:      sourceName,
				ReadTime:    readTime(content),
				Tags:        []string{cat, strings.Fields(topic)[0]},
			})
		}
	}

	g.articles = articles
}

// Articles returns a copy of the current article set.
func (g *Generator) Articles() []models.Article {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Article, len(g.articles))
	copy(out, g.articles)
	return out
}

// Version reports the current generation round.
func (g *Generator) Version() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.version
}

// Search returns up to 50 articles whose title, summary, content, tags
// or author contain the query, case-insensitively.
func (g *Generator) Search(query string) []models.Article {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var results []models.Article
	for _, a := range g.articles {
		if matches(a, term) {
			results = append(results, a)
			if len(results) == 50 {
				break
			}
		}
	}
	return results
}

func matches(a models.Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Summary), term) ||
		strings.Contains(strings.ToLower(a.Content), term) ||
		strings.Contains(strings.ToLower(a.Author), term) ||
		strings.Contains(strings.ToLower(a.Source), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func buildContent(title, topic, category string) string {
	paragraphs := []string{
		title + ".",
		fmt.Sprintf("Observers say the development around %s marks a significant shift for the %s landscape, with stakeholders watching closely as events unfold.", topic, category),
		fmt.Sprintf("Officials declined to comment on the timeline, but sources familiar with the matter expect further announcements on %s in the coming weeks.", topic),
		"Analysts caution that early reports may be revised as more information becomes available.",
	}
	return strings.Join(paragraphs, "\n\n")
}

func readTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// AvatarURL builds a deterministic avatar reference for an author name.
// Used when the source provides no avatar of its own.
func AvatarURL(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "guest"
	}
	return "https://api.dicebear.com/7.x/personas/svg?seed=" + url.QueryEscape(name)
}
