package team

// Member is a team bio shown on the About/Team pages.
type Member struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// DemoMembers seeds the site when no database is configured.
var DemoMembers = []Member{
	{ID: 1, Name: "Anya Petrova", Role: "Founder & Creative Director", Bio: "Leads design strategy and client relationships.", Avatar: "/team/anya.jpg"},
	{ID: 2, Name: "Marcus Bell", Role: "Lead Developer", Bio: "Builds the storefronts and keeps them fast.", Avatar: "/team/marcus.jpg"},
	{ID: 3, Name: "Ines Duarte", Role: "Brand Designer", Bio: "Turns rough ideas into coherent visual identities.", Avatar: "/team/ines.jpg"},
	{ID: 4, Name: "Tomas Lindqvist", Role: "Project Manager", Bio: "Keeps every project on schedule and in scope.", Avatar: "/team/tomas.jpg"},
}
