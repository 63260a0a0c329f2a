package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// GraphCache guarda o grafo sociométrico calculado de cada pesquisa
type GraphCache struct {
	items *gocache.Cache
}

// NewGraphCache cria um cache de grafos com o tempo de expiração informado.
// ttl deve ser positivo: com zero o go-cache nunca expira os itens (config.Load rejeita esse caso).
func NewGraphCache(ttl time.Duration) *GraphCache {
	return &GraphCache{items: gocache.New(ttl, 2*ttl)}
}

func graphKey(surveyID string) string {
	return "graph:" + surveyID
}

// Get retorna o grafo em cache da pesquisa, se houver
func (c *GraphCache) Get(surveyID string) (*sociometry.Graph, bool) {
	v, found := c.items.Get(graphKey(surveyID))
	if !found {
		return nil, false
	}
	g, ok := v.(*sociometry.Graph)
	return g, ok
}

// Set armazena o grafo da pesquisa com a expiração padrão
func (c *GraphCache) Set(surveyID string, g *sociometry.Graph) {
	c.items.SetDefault(graphKey(surveyID), g)
}

// Invalidate remove o grafo da pesquisa. Deve ser chamado quando uma nova resposta é gravada.
func (c *GraphCache) Invalidate(surveyID string) {
	c.items.Delete(graphKey(surveyID))
}

// Len retorna a quantidade de grafos em cache
func (c *GraphCache) Len() int {
	return c.items.ItemCount()
}
