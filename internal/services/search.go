package services

import (
	"log"

	"github.com/meilisearch/meilisearch-go"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/models"
)

// PostDocument is what gets indexed for both post kinds.
type PostDocument struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Route       string `json:"route"`
}

type SearchService struct {
	client *meilisearch.Client
	index  string
}

func NewSearchService(cfg *config.Config) *SearchService {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   cfg.MeiliURL,
		APIKey: cfg.MeiliAPIKey,
	})

	// Ensure posts index exists (best effort)
	_, err := client.GetIndex("posts")
	if err != nil {
		_, err = client.CreateIndex(&meilisearch.IndexConfig{
			Uid:        "posts",
			PrimaryKey: "id",
		})
		if err != nil {
			log.Printf("Failed to create meilisearch posts index: %v", err)
		}

		_, err = client.Index("posts").UpdateFilterableAttributes(&[]string{"kind", "date"})
		if err != nil {
			log.Printf("Failed to update filterable attributes: %v", err)
		}

		_, err = client.Index("posts").UpdateSortableAttributes(&[]string{"date"})
		if err != nil {
			log.Printf("Failed to update sortable attributes: %v", err)
		}

		_, err = client.Index("posts").UpdateSearchableAttributes(&[]string{"title", "description"})
		if err != nil {
			log.Printf("Failed to update searchable attributes: %v", err)
		}
	}

	return &SearchService{
		client: client,
		index:  "posts",
	}
}

func travelogueDocument(t models.Travelogue) PostDocument {
	return PostDocument{ID: "travelogue-" + t.ID, Kind: "travelogue", Title: t.Title, Description: t.Description, Date: t.Date, Route: t.Route}
}

func dailyLifeDocument(d models.DailyLife) PostDocument {
	return PostDocument{ID: "daily-life-" + d.ID, Kind: "daily-life", Title: d.Title, Description: d.Description, Date: d.Date, Route: d.Route}
}

func (s *SearchService) IndexTravelogue(t models.Travelogue) error {
	_, err := s.client.Index(s.index).AddDocuments([]PostDocument{travelogueDocument(t)})
	return err
}

func (s *SearchService) IndexDailyLife(d models.DailyLife) error {
	_, err := s.client.Index(s.index).AddDocuments([]PostDocument{dailyLifeDocument(d)})
	return err
}

func (s *SearchService) IndexAll(travelogues []models.Travelogue, daily []models.DailyLife) error {
	docs := make([]PostDocument, 0, len(travelogues)+len(daily))
	for _, t := range travelogues {
		docs = append(docs, travelogueDocument(t))
	}
	for _, d := range daily {
		docs = append(docs, dailyLifeDocument(d))
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := s.client.Index(s.index).AddDocuments(docs)
	return err
}

func (s *SearchService) Search(query string, kind string) (*meilisearch.SearchResponse, error) {
	request := &meilisearch.SearchRequest{
		Limit: 20,
	}

	if kind != "" {
		request.Filter = `kind = "` + kind + `"`
	}

	return s.client.Index(s.index).Search(query, request)
}

func (s *SearchService) GetPostCount() (int64, error) {
	stats, err := s.client.Index(s.index).GetStats()
	if err != nil {
		return 0, err
	}
	return stats.NumberOfDocuments, nil
}
