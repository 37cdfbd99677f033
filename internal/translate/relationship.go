package translate

import (
	"github.com/rpattn/crmql/internal/domain"
)

// ComposeRelationshipFilter wraps a target filter in a single
// $relationship clause against the given object type. The result is an
// ordinary FilterSet, so relationship filters nest by passing the
// output back in as the target of another call.
func ComposeRelationshipFilter(kind domain.RelationshipKind, targetObject string, target domain.FilterSet) (domain.FilterSet, error) {
	if len(target.Filters) == 0 {
		return domain.FilterSet{}, domain.NewValidationError(domain.ValidationInvalidTarget,
			"relationship filter against %q requires a non-empty target filter", targetObject)
	}

	return domain.FilterSet{
		Filters: []domain.FilterClause{
			{
				Attribute: domain.AttributeRef{Slug: domain.RelationshipSlug},
				Condition: domain.ConditionEquals,
				Value: domain.RelationshipSpec{
					Type: kind,
					Target: domain.RelationshipTarget{
						Object: targetObject,
						Filter: target,
					},
				},
			},
		},
	}, nil
}

// CreatePeopleByCompanyFilter matches people whose company satisfies
// the given filter.
func CreatePeopleByCompanyFilter(companyFilter domain.FilterSet) (domain.FilterSet, error) {
	return ComposeRelationshipFilter(domain.RelationshipWorksAt, "companies", companyFilter)
}

// CreateCompaniesByPeopleFilter matches companies employing at least
// one person who satisfies the given filter.
func CreateCompaniesByPeopleFilter(peopleFilter domain.FilterSet) (domain.FilterSet, error) {
	return ComposeRelationshipFilter(domain.RelationshipEmploys, "people", peopleFilter)
}

// CreateRecordsByListFilter matches records belonging to the list with
// the given id.
func CreateRecordsByListFilter(listID string) (domain.FilterSet, error) {
	if listID == "" {
		return domain.FilterSet{}, domain.NewValidationError(domain.ValidationInvalidTarget,
			"list id is required")
	}

	listFilter := domain.FilterSet{
		Filters: []domain.FilterClause{
			{
				Attribute: domain.AttributeRef{Slug: "list_id"},
				Condition: domain.ConditionEquals,
				Value:     listID,
			},
		},
	}
	return ComposeRelationshipFilter(domain.RelationshipBelongsToList, "lists", listFilter)
}

// CreatePeopleByCompanyListFilter matches people who work at a company
// belonging to the list with the given id. Built by nesting the list
// membership filter inside a works-at relationship.
func CreatePeopleByCompanyListFilter(listID string) (domain.FilterSet, error) {
	companiesInList, err := CreateRecordsByListFilter(listID)
	if err != nil {
		return domain.FilterSet{}, err
	}
	return ComposeRelationshipFilter(domain.RelationshipWorksAt, "companies", companiesInList)
}

// CreateRecordsByNotesFilter matches records that have a note whose
// content contains the given text.
func CreateRecordsByNotesFilter(searchText string) (domain.FilterSet, error) {
	if searchText == "" {
		return domain.FilterSet{}, domain.NewValidationError(domain.ValidationInvalidTarget,
			"note search text is required")
	}

	noteFilter := domain.FilterSet{
		Filters: []domain.FilterClause{
			{
				Attribute: domain.AttributeRef{Slug: "content"},
				Condition: domain.ConditionContains,
				Value:     searchText,
			},
		},
	}
	return ComposeRelationshipFilter(domain.RelationshipHasNote, "notes", noteFilter)
}
