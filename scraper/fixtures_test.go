package scraper

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/anistream/anistream/fetch"
	"github.com/anistream/anistream/source"
)

const testBase = "https://anime.test"

const recentPage = `<html><body>
<div class="last_episodes"><ul class="items">
  <li>
    <div class="img"><a href="/one-piece-episode-1071" title="One Piece"><img src="https://img.test/one-piece.png"></a></div>
    <p class="name"><a href="/one-piece-episode-1071" title="One Piece">One Pie...</a></p>
    <p class="episode">Episode 1071</p>
  </li>
  <li>
    <div class="img"><a href="/no-thumbnail-episode-1" title="No Thumbnail"></a></div>
    <p class="name"><a href="/no-thumbnail-episode-1" title="No Thumbnail">No Thumbnail</a></p>
    <p class="episode">Episode 1</p>
  </li>
  <li>
    <div class="img"><a href="/frieren-episode-28"><img src="https://img.test/frieren.png"></a></div>
    <p class="name"><a href="/frieren-episode-28">Sousou no Frieren</a></p>
    <p class="episode">Episode 28</p>
  </li>
  <li>
    <div class="img"><a href="/untitled-episode-2"><img src="https://img.test/untitled.png"></a></div>
    <p class="name"><a href="/untitled-episode-2" title=""></a></p>
  </li>
  <li>
    <div class="img"><a href="/dandadan-episode-12" title="Dandadan"><img src="https://img.test/dandadan.png"></a></div>
    <p class="name"><a href="/dandadan-episode-12" title="Dandadan">Dandadan</a></p>
    <p class="episode">Episode 12</p>
  </li>
</ul></div>
<div id="load_popular_ongoing"><div class="added_series_body popular"><ul class="listing">
  <li>
    <a href="/category/one-piece" title="One Piece"><div class="thumbnail-popular" style="background: url('https://img.test/op-pop.png');"></div></a>
    <a href="/category/one-piece" title="One Piece">One Piece</a>
    <p class="genres">Genres: Action</p>
    <p class="reaslead">Latest: <a href="/one-piece-episode-1071">Episode 1071</a></p>
  </li>
  <li>
    <a href="/category/broken" title="Broken"><div class="thumbnail-popular" style="background: none;"></div></a>
  </li>
</ul></div></div>
<div class="added_series_body final"><ul>
  <li><a href="/category/frieren" title="Sousou no Frieren"><div class="thumbnail-recent" style="background: url(&quot;https://img.test/frieren-season.png&quot;);"></div>Sousou no Frieren</a></li>
  <li><a href="/category/dandadan" title="Dandadan"><div class="thumbnail-recent" style="background: url(https://img.test/dandadan-season.png);"></div>Dandadan</a></li>
</ul></div>
</body></html>`

const detailPage = `<html><body>
<div class="anime_info_body_bg">
  <img src="https://img.test/frieren.png">
  <h1> Sousou no Frieren </h1>
  <p class="type"><span>Type: </span>TV Series</p>
  <p class="type"><span>Genre: </span><a title="Adventure">Adventure</a>, <a title="Drama">Drama</a>, <a title="Fantasy">Fantasy</a></p>
  <p class="type"><span>Released: </span>2023</p>
  <p class="type"><span>Status: </span><a>Completed</a></p>
</div>
<div class="description"><p>An elf mage outlives her party.</p></div>
<ul id="episode_page">
  <li><a href="#" class="active" ep_start="0" ep_end="12">0-12</a></li>
</ul>
</body></html>`

const detailWithLinks = `<html><body>
<div class="anime_info_body_bg">
  <img src="https://img.test/x.png">
  <h1>Golden Kamuy 4.5</h1>
  <p class="type"><span>Status: </span>Ongoing</p>
</div>
<ul id="episode_page">
  <li><a href="#" ep_start="0" ep_end="3">0-3</a></li>
</ul>
<ul id="episode_related">
  <li><a href=" /golden-kamuy-4th-season-episode-3"><div class="name">EP 3</div></a></li>
  <li><a href=" /golden-kamuy-4th-season-episode-2"><div class="name">EP 2</div></a></li>
  <li><a href=" /golden-kamuy-4th-season-episode-1"><div class="name">EP 1</div></a></li>
</ul>
</body></html>`

const missingStatusPage = `<html><body>
<div class="anime_info_body_bg"><h1>Ghost Entry</h1></div>
</body></html>`

const playerPage = `<html><body>
<div class="anime_video_body"><iframe src="//embed.test/streaming.php?id=MTIz" allowfullscreen></iframe></div>
</body></html>`

const noPlayerPage = `<html><body><div class="anime_video_body"><p>Removed</p></div></body></html>`

// pages serves fixed documents by exact URL and counts requests.
type pages struct {
	docs  map[string]string
	calls atomic.Int32
}

func (p *pages) fetcher() fetch.Fetcher {
	return fetch.Func(func(ctx context.Context, url string) (string, error) {
		p.calls.Add(1)

		if err := ctx.Err(); err != nil {
			return "", &fetch.NetworkError{URL: url, Err: err}
		}

		if doc, ok := p.docs[url]; ok {
			return doc, nil
		}

		return "", &fetch.NetworkError{URL: url, StatusCode: http.StatusNotFound}
	})
}

// memoryCache is a Cache backed by a map of raw values.
type memoryCache struct {
	entries map[string]any
}

func (m *memoryCache) Read(key string, target any) bool {
	v, ok := m.entries[key]
	if !ok {
		return false
	}

	switch t := target.(type) {
	case *[]*source.AnimeSummary:
		*t = v.([]*source.AnimeSummary)
	default:
		return false
	}
	return true
}

func (m *memoryCache) Write(key string, data any) error {
	switch d := data.(type) {
	case *[]*source.AnimeSummary:
		m.entries[key] = *d
	}
	return nil
}
