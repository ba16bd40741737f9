package unopro

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/catalog"
	"github.com/unoproservices/unopro/content"
	"github.com/unoproservices/unopro/forms"
	"github.com/unoproservices/unopro/gallery"
	"github.com/unoproservices/unopro/navigation"
	"github.com/unoproservices/unopro/views"
)

const (
	homeProjects = 3
	pagerWidth   = 5

	flashContact = "contact-sent"
	flashCareers = "application-sent"

	contactFailure = "Something went wrong. Please try again, or call us directly."
	careersFailure = "There was an error submitting your application. Please try again."
	tooManyFailure = "Too many submissions. Please wait a few minutes and try again."
)

// pageHandler renders one page for the current route state.
type pageHandler func(c echo.Context, st navigation.State) (page, error)

func (a *App) pageHandlers() map[navigation.PageID]pageHandler {
	return map[navigation.PageID]pageHandler{
		navigation.Home:     a.homePage,
		navigation.Services: a.servicesPage,
		navigation.Gallery:  a.galleryPage,
		navigation.About:    a.aboutPage,
		navigation.Contact:  a.contactPage,
		navigation.Careers:  a.careersPage,
		navigation.Blog:     a.blogPage,
		navigation.BlogPost: a.postPage,
	}
}

// show navigates to id and renders the page the dispatch table picks.
func (a *App) show(c echo.Context, id navigation.PageID, params ...string) error {
	r := routerFrom(c)
	t := r.Navigate(id, params...)
	st := r.State()
	p, err := a.pages.Dispatch(st)(c, st)
	if err != nil {
		return err
	}
	return a.finish(c, r, t, st, p)
}

// finish renders p unless a newer navigation superseded it or the client went
// away while it was being built.
func (a *App) finish(c echo.Context, r *navigation.Router, t navigation.Ticket, st navigation.State, p page) error {
	if !r.Current(t) || c.Request().Context().Err() != nil {
		a.Log.Debug().Str("page", string(st.Page)).Msg("discarding stale result")
		return nil
	}
	return a.renderPage(c, st, p)
}

func (a *App) handleHome(c echo.Context) error {
	return a.show(c, navigation.Home)
}

func (a *App) handleServices(c echo.Context) error {
	if section := c.Param("section"); section != "" {
		return a.show(c, navigation.Services, section)
	}
	return a.show(c, navigation.Services)
}

func (a *App) handleGallery(c echo.Context) error {
	return a.show(c, navigation.Gallery)
}

func (a *App) handleAbout(c echo.Context) error {
	return a.show(c, navigation.About)
}

func (a *App) handleContact(c echo.Context) error {
	return a.show(c, navigation.Contact)
}

func (a *App) handleCareers(c echo.Context) error {
	return a.show(c, navigation.Careers)
}

func (a *App) handleBlog(c echo.Context) error {
	if n := c.Param("page"); n != "" {
		return a.show(c, navigation.Blog, n)
	}
	if n := c.QueryParam("page"); n != "" {
		return a.show(c, navigation.Blog, n)
	}
	return a.show(c, navigation.Blog)
}

func (a *App) handlePost(c echo.Context) error {
	return a.show(c, navigation.BlogPost, c.Param("slug"))
}

// handleAnyPage navigates to an arbitrary page id; unknown ids show home.
func (a *App) handleAnyPage(c echo.Context) error {
	id := navigation.PageID(c.Param("page"))
	if c.QueryParams().Has("param") {
		return a.show(c, id, c.QueryParam("param"))
	}
	return a.show(c, id)
}

func (a *App) canonical(id navigation.PageID, param string) string {
	return strings.TrimSuffix(a.Config.URL, "/") + views.PagePath(id, param)
}

func (a *App) title(t string) string {
	return t + " | " + a.Config.Name
}

func (a *App) homePage(c echo.Context, st navigation.State) (page, error) {
	info := a.SiteInfo()
	return page{
		meta: views.PageMeta{
			Title:       a.Config.Name + " | Chicago Lawn Care & Snow Removal",
			Description: a.Config.Description,
			URL:         a.canonical(navigation.Home, ""),
			JSONLD:      LocalBusinessJsonLD(a.Config, info),
		},
		body: views.Home(views.HomeData{
			Services:     catalog.Services(),
			Projects:     gallery.Featured(homeProjects),
			Testimonials: catalog.Testimonials(),
			Info:         info,
		}),
	}, nil
}

func (a *App) servicesPage(c echo.Context, st navigation.State) (page, error) {
	section := navigation.Section(st)
	if _, ok := catalog.ServiceBySlug(section); !ok {
		section = ""
	}
	return page{
		meta: views.PageMeta{
			Title:       a.title("Services"),
			Description: "Lawn maintenance, fertilizing, leaf cleanups, snow shoveling, and gardening in Chicago.",
			URL:         a.canonical(navigation.Services, section),
		},
		body: views.Services(views.ServicesData{Services: catalog.Services(), Section: section}),
	}, nil
}

func (a *App) galleryPage(c echo.Context, st navigation.State) (page, error) {
	photos := gallery.Photos()
	d := views.GalleryData{
		Projects: gallery.Projects(),
		Photos:   photos,
		Split:    gallery.DefaultSlider,
		Open:     -1,
	}
	if v, err := strconv.Atoi(c.QueryParam("split")); err == nil {
		d.Split = gallery.ClampSlider(v)
	}
	if v, err := strconv.Atoi(c.QueryParam("photo")); err == nil && len(photos) > 0 {
		d.Open = gallery.Normalize(v, len(photos))
		d.Prev, d.Next = gallery.Lightbox(len(photos), d.Open)
	}
	return page{
		meta: views.PageMeta{
			Title:       a.title("Gallery"),
			Description: "Before and after photos of lawn care and property work across Chicagoland.",
			URL:         a.canonical(navigation.Gallery, ""),
		},
		body: views.Gallery(d),
	}, nil
}

func (a *App) aboutPage(c echo.Context, st navigation.State) (page, error) {
	return page{
		meta: views.PageMeta{
			Title:       a.title("About"),
			Description: "Meet the owner of Uno Pro Services and the values behind our work.",
			URL:         a.canonical(navigation.About, ""),
		},
		body: views.About(views.AboutData{Values: catalog.Values(), WhyChoose: catalog.WhyChoose()}),
	}, nil
}

func (a *App) contactMeta() views.PageMeta {
	return views.PageMeta{
		Title:       a.title("Contact"),
		Description: "Request a free lawn care or snow service quote in Chicago.",
		URL:         a.canonical(navigation.Contact, ""),
	}
}

func (a *App) contactView(c echo.Context, st views.FormState, form forms.Contact) views.ContactData {
	st.CSRF = CsrfToken(c)
	return views.ContactData{
		FormState: st,
		Form:      form,
		Services:  catalog.ServiceTitles(),
		Info:      a.SiteInfo(),
	}
}

func (a *App) contactPage(c echo.Context, st navigation.State) (page, error) {
	fs := views.FormState{Success: popFlash(c, flashContact)}
	return page{meta: a.contactMeta(), body: views.Contact(a.contactView(c, fs, forms.Contact{}))}, nil
}

func (a *App) careersMeta() views.PageMeta {
	return views.PageMeta{
		Title:       a.title("Careers"),
		Description: "Join the Uno Pro Services crew. Landscaping and snow removal jobs in Chicagoland.",
		URL:         a.canonical(navigation.Careers, ""),
	}
}

func (a *App) careersView(c echo.Context, st views.FormState, form forms.Application) views.CareersData {
	st.CSRF = CsrfToken(c)
	return views.CareersData{
		FormState:        st,
		Form:             form,
		Positions:        catalog.Positions(),
		ExperienceLevels: catalog.ExperienceLevels(),
		Skills:           catalog.Skills(),
		ReferralSources:  catalog.ReferralSources(),
	}
}

func (a *App) careersPage(c echo.Context, st navigation.State) (page, error) {
	fs := views.FormState{Success: popFlash(c, flashCareers)}
	return page{meta: a.careersMeta(), body: views.Careers(a.careersView(c, fs, forms.Application{}))}, nil
}

func (a *App) blogPage(c echo.Context, st navigation.State) (page, error) {
	var d views.BlogListData
	posts, err := a.Posts.ListPosts(c.Request().Context())
	if err != nil {
		a.Log.Warn().Err(err).Msg("list blog posts")
		d.Failed = true
		posts = nil
	}
	d.Page = blog.Paginate(blog.Sort(posts), navigation.BlogPage(st), blog.PageSize)
	d.Window = d.Page.Window(pagerWidth)

	title := a.title("Blog")
	if d.Page.Current > 1 {
		title = a.title("Blog, Page " + strconv.Itoa(d.Page.Current))
	}
	return page{
		meta: views.PageMeta{
			Title:       title,
			Description: "Lawn care, snow service, and seasonal property tips for Chicago homeowners.",
			URL:         a.canonical(navigation.Blog, strconv.Itoa(d.Page.Current)),
		},
		body: views.BlogList(d),
	}, nil
}

func (a *App) postPage(c echo.Context, st navigation.State) (page, error) {
	slug := navigation.Slug(st)
	notFound := page{
		meta:   views.PageMeta{Title: a.title("Post Not Found")},
		body:   views.BlogPost(views.BlogPostData{}),
		status: http.StatusNotFound,
	}
	if slug == "" {
		return notFound, nil
	}

	post, posts, err := a.Posts.GetPost(c.Request().Context(), slug)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			a.Log.Warn().Err(err).Str("slug", slug).Msg("get blog post")
			notFound.body = views.BlogPost(views.BlogPostData{Failed: true})
		}
		return notFound, nil
	}

	res := blog.Resolve(blog.Sort(posts), slug)
	if res.Found() {
		// Index entries may lack the body; the detail record is authoritative.
		*res.Post = post
	} else {
		res.Post = &post
	}
	return page{
		meta: views.PageMeta{
			Title:       a.title(post.Title),
			Description: post.Intro,
			URL:         a.canonical(navigation.BlogPost, slug),
			OGType:      "article",
			JSONLD:      BlogPostingJsonLD(post, a.Config),
		},
		body: views.BlogPost(views.BlogPostData{Resolution: res}),
	}, nil
}

// formStatus is the status for a re-rendered form. HTMX only swaps 2xx.
func formStatus(c echo.Context, code int) int {
	if isPartial(c) {
		return http.StatusOK
	}
	return code
}

func (a *App) handleContactSubmit(c echo.Context) error {
	r := routerFrom(c)
	t := r.Navigate(navigation.Contact)
	st := r.State()
	log := a.Log.WithComponent("contact")

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form := forms.ContactFromValues(values).Normalize()
	render := func(fs views.FormState, f forms.Contact, code int) error {
		return a.finish(c, r, t, st, page{
			meta:   a.contactMeta(),
			body:   views.Contact(a.contactView(c, fs, f)),
			status: formStatus(c, code),
		})
	}

	if errs := form.Validate(); errs != nil {
		return render(views.FormState{Errors: errs}, form, http.StatusUnprocessableEntity)
	}
	ip := c.RealIP()
	if !a.limiter.Check(ip) {
		log.Warn().Str("ip", ip).Msg("submission rate limited")
		return render(views.FormState{Failure: tooManyFailure}, form, http.StatusTooManyRequests)
	}
	a.limiter.Record(ip)

	if err := a.Forms.SubmitContact(c.Request().Context(), form); err != nil {
		var fe forms.FieldErrors
		if errors.As(err, &fe) {
			return render(views.FormState{Errors: fe}, form, http.StatusUnprocessableEntity)
		}
		log.Error().Err(err).Msg("submit contact form")
		return render(views.FormState{Failure: contactFailure}, form, http.StatusBadGateway)
	}

	log.Info().Str("service", form.Service).Msg("contact form submitted")
	if isPartial(c) {
		return render(views.FormState{Success: true}, forms.Contact{}, http.StatusOK)
	}
	if err := setFlash(c, flashContact); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, views.PagePath(navigation.Contact, ""))
}

func (a *App) handleCareersSubmit(c echo.Context) error {
	r := routerFrom(c)
	t := r.Navigate(navigation.Careers)
	st := r.State()
	log := a.Log.WithComponent("careers")

	values, err := c.FormParams()
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return err
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	app := forms.ApplicationFromValues(values).Normalize()
	resume, err := readResume(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
	}
	app.Resume = resume

	render := func(fs views.FormState, f forms.Application, code int) error {
		f.Resume = nil
		return a.finish(c, r, t, st, page{
			meta:   a.careersMeta(),
			body:   views.Careers(a.careersView(c, fs, f)),
			status: formStatus(c, code),
		})
	}

	if errs := app.Validate(); errs != nil {
		return render(views.FormState{Errors: errs}, app, http.StatusUnprocessableEntity)
	}
	ip := c.RealIP()
	if !a.limiter.Check(ip) {
		log.Warn().Str("ip", ip).Msg("submission rate limited")
		return render(views.FormState{Failure: tooManyFailure}, app, http.StatusTooManyRequests)
	}
	a.limiter.Record(ip)

	if err := a.Forms.SubmitApplication(c.Request().Context(), app); err != nil {
		var fe forms.FieldErrors
		if errors.As(err, &fe) {
			return render(views.FormState{Errors: fe}, app, http.StatusUnprocessableEntity)
		}
		log.Error().Err(err).Msg("submit application")
		return render(views.FormState{Failure: careersFailure}, app, http.StatusBadGateway)
	}

	log.Info().Str("position", app.Position).Bool("resume", resume != nil).Msg("application submitted")
	if isPartial(c) {
		return render(views.FormState{Success: true}, forms.Application{}, http.StatusOK)
	}
	if err := setFlash(c, flashCareers); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, views.PagePath(navigation.Careers, ""))
}

// resumeTooLarge renders an empty careers form carrying the resume size error,
// for bodies too large to parse.
func (a *App) resumeTooLarge(c echo.Context) error {
	r := routerFrom(c)
	t := r.Navigate(navigation.Careers)
	fs := views.FormState{Errors: forms.FieldErrors{forms.ResumeField: forms.ErrResumeSize.Error()}}
	return a.finish(c, r, t, r.State(), page{
		meta:   a.careersMeta(),
		body:   views.Careers(a.careersView(c, fs, forms.Application{})),
		status: formStatus(c, http.StatusRequestEntityTooLarge),
	})
}

// readResume returns the uploaded resume, or nil when no file was chosen.
// Oversized files are read only far enough to sniff their type; Size keeps
// the declared length so the size check still rejects them.
func readResume(c echo.Context) (*forms.Resume, error) {
	fh, err := c.FormFile(forms.ResumeField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fh.Filename == "" && fh.Size == 0 {
		return nil, nil
	}
	return openResume(fh)
}

func openResume(fh *multipart.FileHeader) (*forms.Resume, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, forms.MaxResumeSize+1))
	if err != nil {
		return nil, err
	}
	return &forms.Resume{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Data:        data,
	}, nil
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Posts.ListPosts(c.Request().Context())
	if err != nil {
		a.Log.Warn().Err(err).Msg("sitemap: list blog posts")
		posts = nil
	}
	return a.renderSitemap(c, blog.Sort(posts))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Posts.ListPosts(c.Request().Context())
	if err != nil {
		a.Log.Warn().Err(err).Msg("feed: list blog posts")
		posts = nil
	}
	return a.renderRSS(c, blog.Sort(posts))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + BuildURL(a.Config.URL) + "sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var st navigation.State
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderPage(c, st, page{
			meta:   views.PageMeta{Title: a.title("Page Not Found")},
			body:   views.NotFound(),
			status: http.StatusNotFound,
		})
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = a.renderPage(c, st, page{
			meta:   views.PageMeta{Title: a.title("Error")},
			body:   views.ServerError(),
			status: code,
		})
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
