package sanity

// Projections flatten slug objects to strings and dereference authors so
// results decode straight into the content types.
const (
	documentProjection = `{
  _id, _type, "slug": slug.current, title, pageTitle, metaTitle, metaDescription,
  tldr, question, location, industry, region, content, publishedAt, _updatedAt,
  author->{_id, name, role},
  salaryData
}`

	featuredProjection = `{
  _id, title, "sectionKey": sectionKey.current, displayType, isActive, order, publishedAt, _updatedAt,
  featuredItems[]->{_id, _type, title, "slug": slug.current, name}
}`

	agencyProjection = `{
  _id, "slug": slug.current, name, description, website, linkedin, specializations,
  industries, locations, size, rating, reviewCount, verified, _updatedAt
}`

	faqProjection = `{
  _id, "slug": slug.current, question, shortAnswer, detailedAnswer, category,
  keywords, helpful, notHelpful, order, _updatedAt
}`

	jobProjection = `{
  _id, "slug": slug.current, title, company, location, industry, salary, salaryRange,
  experienceLevel, shortDescription, description, requirements, benefits,
  applicationUrl, postedDate, status, isActive, _updatedAt
}`

	authorProjection = `{_id, "slug": slug.current, name, role, bio, credentials, linkedin, twitter}`

	// tieBreak orders multiple matches deterministically.
	tieBreak = `order(slug.current asc, _id asc)`
)

const (
	queryDocumentBySlug = `*[_type == "chiefOfStaff" && slug.current == $slug] | ` + tieBreak + `[0]` + documentProjection

	queryDocumentByTitle = `*[_type == "chiefOfStaff" && (
  lower(metaTitle) match $pattern ||
  lower(pageTitle) match $pattern ||
  lower(title) match $pattern
)] | ` + tieBreak + `[0]` + documentProjection

	queryFeatured = `*[_type == "featuredContent" && sectionKey.current == $key] | order(sectionKey.current asc, _id asc)[0]` + featuredProjection

	queryLocation = `*[_type == "chiefOfStaff" && location == $location && !defined(industry)] | ` + tieBreak + `[0]` + documentProjection
	queryIndustry = `*[_type == "chiefOfStaff" && industry == $industry && !defined(location)] | ` + tieBreak + `[0]` + documentProjection
	queryCombo    = `*[_type == "chiefOfStaff" && location == $location && industry == $industry] | ` + tieBreak + `[0]` + documentProjection

	queryAgencies     = `*[_type == "recruitmentAgency"] | order(rating desc, name asc)` + agencyProjection
	queryAgencyBySlug = `*[_type == "recruitmentAgency" && slug.current == $slug] | ` + tieBreak + `[0]` + agencyProjection

	queryFAQs      = `*[_type == "faqContent"] | order(helpful desc, question asc)` + faqProjection
	queryFAQBySlug = `*[_type == "faqContent" && slug.current == $slug] | ` + tieBreak + `[0]` + faqProjection

	queryActiveJobs = `*[_type == "jobListing" && isActive == true] | order(postedDate desc, slug.current asc)[0...$limit]` + jobProjection
	queryJobBySlug  = `*[_type == "jobListing" && slug.current == $slug] | ` + tieBreak + `[0]` + jobProjection

	querySitemap = `*[_type in ["chiefOfStaff", "recruitmentAgency", "faqContent"] && defined(slug.current)] | order(_type asc, slug.current asc){"slug": slug.current, _type, _updatedAt}`

	queryUKAverageSalary = `*[_type == "chiefOfStaff" && region in ["uk", "UK"]] | ` + tieBreak + `[0].salaryData.average`

	queryExists         = `defined(*[_type == $type && slug.current == $slug][0]._id)`
	queryFeaturedExists = `defined(*[_type == "featuredContent" && sectionKey.current == $slug][0]._id)`
)
