package core

import (
	"github.com/mus-format/mus-go/ord"
)

// awardListMUS serializes a list of award names.
var awardListMUS = ord.NewSliceSer[string](ord.String)

// PublicationMUS is the MUS serializer for Publication values. Field order
// is fixed and is part of the stored layout.
var PublicationMUS = publicationMUS{}

type publicationMUS struct{}

func (publicationMUS) Size(v Publication) (size int) {
	size = ord.String.Size(string(v.ID))
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Author)
	size += ord.String.Size(v.License)
	size += ord.String.Size(v.Description)
	size += awardListMUS.Size(v.RawAwards)
	return size + awardListMUS.Size(v.Awards)
}

func (publicationMUS) Marshal(v Publication, bs []byte) (n int) {
	n = ord.String.Marshal(string(v.ID), bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Author, bs[n:])
	n += ord.String.Marshal(v.License, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += awardListMUS.Marshal(v.RawAwards, bs[n:])
	return n + awardListMUS.Marshal(v.Awards, bs[n:])
}

func (publicationMUS) Unmarshal(bs []byte) (v Publication, n int, err error) {
	var (
		id string
		n1 int
	)

	id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.ID = ID(id)

	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	v.Author, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	v.License, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	v.RawAwards, n1, err = unmarshalAwardList(bs[n:])
	n += n1
	if err != nil {
		return
	}

	v.Awards, n1, err = unmarshalAwardList(bs[n:])
	n += n1
	return
}

// unmarshalAwardList decodes an award list, keeping an absent list nil so
// publications round-trip unchanged.
func unmarshalAwardList(bs []byte) (v []string, n int, err error) {
	v, n, err = awardListMUS.Unmarshal(bs)
	if len(v) == 0 {
		v = nil
	}
	return
}
