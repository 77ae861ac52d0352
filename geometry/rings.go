package geometry

// Rings holds, for radius 0..9, the exact (dy,dx) offset sequence used
// by find_safety/find_hiding in the original. The search order itself is
// what breaks ties between equally good candidates, so the values below
// are transcribed, not regenerated from a geometric formula.
var Rings = [10][]Point{
	{}, // radius 0
	{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}, // radius 1: 8 points
	{{-1, -2}, {-1, 2}, {-2, -1}, {-2, 0}, {-2, 1}, {0, -2}, {0, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 0}, {2, 1}}, // radius 2: 12 points
	{{-1, -3}, {-1, 3}, {-2, -2}, {-2, 2}, {-3, -1}, {-3, 0}, {-3, 1}, {0, -3}, {0, 3}, {1, -3}, {1, 3}, {2, -2}, {2, 2}, {3, -1}, {3, 0}, {3, 1}}, // radius 3: 16 points
	{{-1, -4}, {-1, 4}, {-2, -3}, {-2, 3}, {-3, -2}, {-3, -3}, {-3, 2}, {-3, 3}, {-4, -1}, {-4, 0}, {-4, 1}, {0, -4}, {0, 4}, {1, -4}, {1, 4}, {2, -3}, {2, 3}, {3, -2}, {3, -3}, {3, 2}, {3, 3}, {4, -1}, {4, 0}, {4, 1}}, // radius 4: 24 points
	{{-1, -5}, {-1, 5}, {-2, -4}, {-2, 4}, {-3, -4}, {-3, 4}, {-4, -2}, {-4, -3}, {-4, 2}, {-4, 3}, {-5, -1}, {-5, 0}, {-5, 1}, {0, -5}, {0, 5}, {1, -5}, {1, 5}, {2, -4}, {2, 4}, {3, -4}, {3, 4}, {4, -2}, {4, -3}, {4, 2}, {4, 3}, {5, -1}, {5, 0}, {5, 1}}, // radius 5: 28 points
	{{-1, -6}, {-1, 6}, {-2, -5}, {-2, 5}, {-3, -5}, {-3, 5}, {-4, -4}, {-4, 4}, {-5, -2}, {-5, -3}, {-5, 2}, {-5, 3}, {-6, -1}, {-6, 0}, {-6, 1}, {0, -6}, {0, 6}, {1, -6}, {1, 6}, {2, -5}, {2, 5}, {3, -5}, {3, 5}, {4, -4}, {4, 4}, {5, -2}, {5, -3}, {5, 2}, {5, 3}, {6, -1}, {6, 0}, {6, 1}}, // radius 6: 32 points
	{{-1, -7}, {-1, 7}, {-2, -6}, {-2, 6}, {-3, -6}, {-3, 6}, {-4, -5}, {-4, 5}, {-5, -4}, {-5, -5}, {-5, 4}, {-5, 5}, {-6, -2}, {-6, -3}, {-6, 2}, {-6, 3}, {-7, -1}, {-7, 0}, {-7, 1}, {0, -7}, {0, 7}, {1, -7}, {1, 7}, {2, -6}, {2, 6}, {3, -6}, {3, 6}, {4, -5}, {4, 5}, {5, -4}, {5, -5}, {5, 4}, {5, 5}, {6, -2}, {6, -3}, {6, 2}, {6, 3}, {7, -1}, {7, 0}, {7, 1}}, // radius 7: 40 points
	{{-1, -8}, {-1, 8}, {-2, -7}, {-2, 7}, {-3, -7}, {-3, 7}, {-4, -6}, {-4, 6}, {-5, -6}, {-5, 6}, {-6, -4}, {-6, -5}, {-6, 4}, {-6, 5}, {-7, -2}, {-7, -3}, {-7, 2}, {-7, 3}, {-8, -1}, {-8, 0}, {-8, 1}, {0, -8}, {0, 8}, {1, -8}, {1, 8}, {2, -7}, {2, 7}, {3, -7}, {3, 7}, {4, -6}, {4, 6}, {5, -6}, {5, 6}, {6, -4}, {6, -5}, {6, 4}, {6, 5}, {7, -2}, {7, -3}, {7, 2}, {7, 3}, {8, -1}, {8, 0}, {8, 1}}, // radius 8: 44 points
	{{-1, -9}, {-1, 9}, {-2, -8}, {-2, 8}, {-3, -8}, {-3, 8}, {-4, -7}, {-4, 7}, {-5, -7}, {-5, 7}, {-6, -6}, {-6, 6}, {-7, -4}, {-7, -5}, {-7, 4}, {-7, 5}, {-8, -2}, {-8, -3}, {-8, 2}, {-8, 3}, {-9, -1}, {-9, 0}, {-9, 1}, {0, -9}, {0, 9}, {1, -9}, {1, 9}, {2, -8}, {2, 8}, {3, -8}, {3, 8}, {4, -7}, {4, 7}, {5, -7}, {5, 7}, {6, -6}, {6, 6}, {7, -4}, {7, -5}, {7, 4}, {7, 5}, {8, -2}, {8, -3}, {8, 2}, {8, 3}, {9, -1}, {9, 0}, {9, 1}}, // radius 9: 48 points
}
