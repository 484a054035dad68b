package content

import (
	"github.com/rs/zerolog/log"

	"github.com/windseal/windseal-cms/internal/store"
)

// Content aggregates every editable collection plus the settings singleton.
// It is hydrated once at startup and all further reads go against memory;
// every commit is written back to the store synchronously.
type Content struct {
	Categories   *Collection[Category]
	Products     *Collection[Product]
	Catalogs     *Collection[Catalog]
	Testimonials *Collection[Testimonial]
	Gallery      *Collection[GalleryImage]
	Settings     *Singleton[SiteSettings]
	Editor       *SettingsEditor
}

// Load hydrates all collections from the store, falling back to seed data
// per collection, and wires write-through persistence.
func Load(s *store.Store) *Content {
	c := &Content{
		Categories: NewCollection(store.KeyCategories,
			store.Hydrate(s, store.KeyCategories, SeedCategories()),
			func(v Category) string { return v.ID },
			func(v Category, id string) Category { v.ID = id; return v },
		),
		Products: NewCollection(store.KeyProducts,
			store.Hydrate(s, store.KeyProducts, SeedProducts()),
			func(v Product) string { return v.ID },
			func(v Product, id string) Product { v.ID = id; return v },
			WithUpdateMerge(mergeProduct),
		),
		Catalogs: NewCollection(store.KeyCatalogs,
			store.Hydrate(s, store.KeyCatalogs, SeedCatalogs()),
			func(v Catalog) string { return v.ID },
			func(v Catalog, id string) Catalog { v.ID = id; return v },
		),
		Testimonials: NewCollection(store.KeyTestimonials,
			store.Hydrate(s, store.KeyTestimonials, SeedTestimonials()),
			func(v Testimonial) string { return v.ID },
			func(v Testimonial, id string) Testimonial { v.ID = id; return v },
		),
		Gallery: NewCollection(store.KeyGallery,
			store.Hydrate(s, store.KeyGallery, SeedGallery()),
			func(v GalleryImage) string { return v.ID },
			func(v GalleryImage, id string) GalleryImage { v.ID = id; return v },
			WithPrependInserts[GalleryImage](),
		),
		Settings: NewSingleton(store.KeySettings,
			store.Hydrate(s, store.KeySettings, SeedSettings()),
			SiteSettings.Clone,
		),
	}

	c.Editor = NewSettingsEditor(c.Settings)

	persistCollection(s, c.Categories)
	persistCollection(s, c.Products)
	persistCollection(s, c.Catalogs)
	persistCollection(s, c.Testimonials)
	persistCollection(s, c.Gallery)

	c.Settings.OnChange(func(v SiteSettings) {
		if err := store.Persist(s, store.KeySettings, v); err != nil {
			log.Error().Err(err).Str("key", store.KeySettings).Msg("failed to persist snapshot")
		}
	})

	return c
}

// mergeProduct keeps the stored image list when an edit submits none, so
// clearing the images field does not wipe a product's photos.
func mergeProduct(old, incoming Product) Product {
	if len(incoming.Images) == 0 {
		incoming.Images = old.Images
	}

	return incoming
}

func persistCollection[T any](s *store.Store, c *Collection[T]) {
	key := c.Key()

	c.OnChange(func(items []T) {
		if err := store.Persist(s, key, items); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to persist snapshot")
		}
	})
}
