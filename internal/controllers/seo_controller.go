package controllers

import (
    "encoding/xml"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/gin-gonic/gin"
)

// PublicPages are the crawlable pages of the public site.
var PublicPages = []string{
    "/",
    "/profile",
    "/profile/history",
    "/profile/vision-mission",
    "/academic",
    "/facilities",
    "/staff",
    "/contact",
    "/school",
    "/admissions",
    "/register",
    "/registrar",
}

var disallowedPaths = []string{"/dashboard/", "/admin/", "/login", "/api/", "/_next/", "/private/"}

type sitemapEntry struct {
    Path       string
    ChangeFreq string
    Priority   float64
}

var sitemapEntries = []sitemapEntry{
    {"", "weekly", 1.0},
    {"/profile", "monthly", 0.9},
    {"/profile/history", "yearly", 0.8},
    {"/profile/vision-mission", "yearly", 0.8},
    {"/academic", "monthly", 0.9},
    {"/facilities", "monthly", 0.8},
    {"/staff", "monthly", 0.8},
    {"/contact", "monthly", 0.9},
    {"/school", "weekly", 0.8},
    {"/admissions", "weekly", 0.9},
    {"/auth/signup", "weekly", 0.8},
    {"/registrar", "weekly", 0.7},
    {"/auth/signin", "yearly", 0.3},
}

type SEOController struct {
    SiteURL string
    Now     func() time.Time
}

func (sc *SEOController) Robots(c *gin.Context) {
    var b strings.Builder
    for _, agent := range []string{"*", "Googlebot"} {
        fmt.Fprintf(&b, "User-agent: %s\n", agent)
        for _, p := range PublicPages {
            fmt.Fprintf(&b, "Allow: %s\n", p)
        }
        for _, p := range disallowedPaths {
            fmt.Fprintf(&b, "Disallow: %s\n", p)
        }
        b.WriteString("\n")
    }
    fmt.Fprintf(&b, "Host: %s\n", sc.SiteURL)
    fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", sc.SiteURL)
    c.String(http.StatusOK, b.String())
}

type urlSet struct {
    XMLName xml.Name     `xml:"urlset"`
    XMLNS   string       `xml:"xmlns,attr"`
    URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
    Loc        string `xml:"loc"`
    LastMod    string `xml:"lastmod"`
    ChangeFreq string `xml:"changefreq"`
    Priority   string `xml:"priority"`
}

func (sc *SEOController) Sitemap(c *gin.Context) {
    now := time.Now
    if sc.Now != nil {
        now = sc.Now
    }
    lastMod := now().UTC().Format(time.RFC3339)
    set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
    for _, e := range sitemapEntries {
        set.URLs = append(set.URLs, sitemapURL{
            Loc:        sc.SiteURL + e.Path,
            LastMod:    lastMod,
            ChangeFreq: e.ChangeFreq,
            Priority:   fmt.Sprintf("%.1f", e.Priority),
        })
    }
    c.XML(http.StatusOK, set)
}
