package i18n

var translations = map[string]map[string]string{
	Portuguese: {
		"FlixHub":                          "FlixHub",
		"Home":                             "Início",
		"Search for movies or TV shows...": "Pesquisar filmes ou séries...",
		"Search":                           "Buscar",
		"Movies":                           "Filmes",
		"TV Shows":                         "Séries",
		"Advanced Search":                  "Busca Avançada",
		"Country":                          "País",
		"All Countries":                    "Todos os Países",
		"Genre":                            "Gênero",
		"All Genres":                       "Todos os Gêneros",
		"Year From":                        "Ano De",
		"Year To":                          "Ano Até",
		"Minimum Rating":                   "Nota Mínima",
		"Media Type":                       "Tipo de Mídia",
		"Movie":                            "Filme",
		"TV Show":                          "Série",
		"Sort By":                          "Ordenar Por",
		"Popularity (Descending)":          "Popularidade (Descendente)",
		"Rating (Descending)":              "Nota (Descendente)",
		"Year (Newest First)":              "Ano (Mais Recente Primeiro)",
		"Year (Oldest First)":              "Ano (Mais Antigo Primeiro)",
		"Play Episode (Server 1)":          "Assistir Episódio (Servidor 1)",
		"Play Episode (Server 2)":          "Assistir Episódio (Servidor 2)",

		"Play (Server 1)":        "Assistir (Servidor 1)",
		"Play (Server 2)":        "Assistir (Servidor 2)",
		"More Info":              "Mais Informações",
		"More Like This":         "Mais Títulos Semelhantes",
		"Cast":                   "Elenco",
		"Seasons":                "Temporadas",
		"Episodes":               "Episódios",
		"Server":                 "Servidor",
		"Help":                   "Ajuda",
		"Search Results":         "Resultados da Busca",
		"No results found":       "Nenhum resultado encontrado",
		"More to Explore":        "Mais para Explorar",
		"Trending Movies":        "Filmes em Alta",
		"Trending Shows":         "Séries em Alta",
		"Popular":                "Populares",
		"Top Rated Movies":       "Filmes Mais Bem Avaliados",
		"Top Rated Shows":        "Séries Mais Bem Avaliadas",
		"Action & Adventure":     "Ação e Aventura",
		"Comedy":                 "Comédia",
		"Drama":                  "Drama",
		"Sci-Fi & Fantasy":       "Ficção Científica e Fantasia",
		"Recently Added":         "Adicionados Recentemente",
		"Loading...":             "Carregando...",
		"Unable to load player":  "Não foi possível carregar o player",
		"Try the other server":   "Tente o outro servidor",
		"Opened in browser":      "Aberto no navegador",
		"Filter":                 "Filtrar",
		"Apply":                  "Aplicar",
		"Cancel":                 "Cancelar",
		"Back":                   "Voltar",
		"Close":                  "Fechar",
		"Language":               "Idioma",
		"Genre not found":        "Gênero não encontrado",
		"Invalid year":           "Ano inválido",
		"Invalid rating":         "Nota inválida",
	},
}
